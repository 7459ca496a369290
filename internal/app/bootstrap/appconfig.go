// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, timeouts); AppConfig is everything specific to eTutor.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: etutor-session)
	SessionDomain string // Cookie domain (blank means current host)

	// File storage configuration for lesson/exam/homework materials
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads/materials")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files/materials")

	// S3 configuration (only used if StorageType is "s3")
	StorageS3Region string        // AWS region
	StorageS3Bucket string        // S3 bucket name
	StorageS3Prefix string        // Key prefix (e.g., "materials/")
	StorageS3Expiry time.Duration // Presigned URL lifetime

	// BaseURL is the externally visible URL of this service.
	BaseURL string // e.g., "https://admin.etutor.vn" or "http://localhost:3000"
}
