package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Cognito Auth
	CognitoUserPoolID string `envconfig:"COGNITO_USER_POOL_ID"`
	CognitoClientID   string `envconfig:"COGNITO_CLIENT_ID"`
	CognitoIssuerURL  string `envconfig:"COGNITO_ISSUER_URL"`

	// Blob storage
	S3Bucket        string `envconfig:"S3_BUCKET" default:"launchpad-media"`
	S3PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`

	// Page cache. Empty disables caching.
	RedisURL        string `envconfig:"REDIS_URL"`
	CacheTTLSeconds uint   `envconfig:"CACHE_TTL_SECONDS" default:"300"`

	// Moderation notifications
	AdminNotifyEmail string `envconfig:"ADMIN_NOTIFY_EMAIL"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}
