package constants

// NSQ topics
const (
	// TopicOTPDispatch carries OTP dispatch audit events consumed by the
	// out-of-band delivery worker.
	TopicOTPDispatch = "identity.otp.dispatch"
)
