package config

import (
	"time"

	"offices/pkg/logger"
)

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "offices"
	DefaultMongoConnTimeout  = 10 * time.Second
	DefaultCollectionName    = "Offices"

	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = logger.JSON

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultJWTLeeway           = 30 * time.Second
	DefaultAuthRequiredRole    = "Receptionist"
	DefaultJWKSClientTimeout   = 10 * time.Second
	DefaultJWKSRefreshInterval = 1 * time.Hour
)
