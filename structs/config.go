package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Cache     *CacheConfig
	Storage   *StorageConfig
	Email     *EmailConfig
	RateLimit *RateLimitConfig
	Store     *StoreConfig
}

type ServerConfig struct {
	AppName        string        // Lumi Noir
	Environment    string        // development, production
	Port           string        // :8084
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	CookieDomain       string // cross-subdomain cookie scope in production
	EncryptionKey      string // 32-byte AES-256 key for order PII at rest; empty disables encryption
}

type CacheConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxRetries   int
	ProductTTL   time.Duration
	ContentTTL   time.Duration
}

type StorageConfig struct {
	Bucket          string // single images bucket, products and site assets share it
	PublicBaseURL   string // base URL for public object access
	CredentialsFile string // optional service account key file
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type RateLimitConfig struct {
	Enabled       bool
	GeneralLimit  int
	GeneralWindow time.Duration
	AuthLimit     int
	AuthWindow    time.Duration
	AdminLimit    int
	AdminWindow   time.Duration
}

// StoreConfig carries storefront-wide defaults.
type StoreConfig struct {
	DefaultCurrency string // EUR
	DefaultLanguage string // en
}
