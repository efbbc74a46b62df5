package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	Market    MarketConfig
	Reward    RewardConfig
	Tax       TaxConfig
	NewRelic  NewRelicConfig
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
	Driver    string
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

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains API keys for scheduler-triggered internal endpoints
type APIKeyConfig struct {
	Scheduler string
}

// MarketConfig contains seat market configuration
type MarketConfig struct {
	BasePrice     int64 `json:"base_price"`      // price when a classroom has no wealth yet
	MinPrice      int64 `json:"min_price"`       // hard floor under the computed price
	PriceCacheTTL int   `json:"price_cache_ttl"` // seconds the read-path price cache lives
}

// RewardConfig contains the quiz reward schedule
type RewardConfig struct {
	Participation int64 `json:"participation"`
	PerCorrect    int64 `json:"per_correct"`
	PerfectBonus  int64 `json:"perfect_bonus"`
}

// TaxConfig contains tax collection configuration
type TaxConfig struct {
	DefaultAmount int64 `json:"default_amount"` // per-student levy when the request gives none
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // file, console or both
}
