package constants

// Redis key formats
const (
	// Identity service
	KeyUserOTP = "user:otp:%s" // Format: user:otp:{phone}

	// Discovery service
	KeyProviderGeo        = "providers:geo"       // GeoHash set of all provider locations
	KeyAvailableProviders = "providers:available" // Set of online provider IDs
	KeyProviderCells      = "providers:cells"     // Hash: provider_id -> geohash cell
)
