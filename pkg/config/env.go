package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"
	EnvCollectionName    = "OFFICES_COLLECTION_NAME"

	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvJWTJWKSURL       = "JWT_JWKS_URL"
	EnvJWTIssuer        = "JWT_ISSUER"
	EnvJWTAudience      = "JWT_AUDIENCE"
	EnvJWTLeeway        = "JWT_LEEWAY"
	EnvAuthRequiredRole = "AUTH_REQUIRED_ROLE"
)
