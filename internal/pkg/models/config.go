package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Discovery DiscoveryConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon connection configuration
type NSQConfig struct {
	NSQDAddress string
}

// JWTConfig contains the credential-pair signing configuration. Access and
// refresh tokens are signed with distinct secrets and distinct expiry
// windows so each variant verifies only against its own secret.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  int // in minutes
	RefreshExpiry int // in minutes
	Issuer        string
}

// OTPConfig contains one-time code issuance configuration
type OTPConfig struct {
	TTL int // code validity in minutes
}

// DiscoveryConfig contains provider discovery defaults
type DiscoveryConfig struct {
	DefaultRadiusMeters float64
	DefaultLimit        int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
