package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Pricing   PricingConfig
	Ledger    LedgerConfig
	Processor ProcessorConfig
	Scheduler SchedulerConfig
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

// PricingConfig contains fee and interest parameters. Rates are integer
// basis points so fee math stays in exact integer arithmetic.
type PricingConfig struct {
	Currency           string `json:"currency"`
	TransferFeeBps     int64  `json:"transfer_fee_bps"`      // peer transfer fee, default 200 (2%)
	EarlyBreakFeeBps   int64  `json:"early_break_fee_bps"`   // savings early-break penalty, default 500 (5%)
	InstantWithdrawBps int64  `json:"instant_withdraw_bps"`  // instant withdrawal fee, default 200
	IdempotencyTTLMins int    `json:"idempotency_ttl_mins"`  // redis idempotency cache TTL
}

// LedgerConfig contains ledger-wide account wiring.
type LedgerConfig struct {
	FeeAccountID string // platform fee-collection account
}

// ProcessorConfig contains the external payment processor endpoint.
type ProcessorConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// SchedulerConfig contains cron specs for the background sweeps.
type SchedulerConfig struct {
	GeofenceExpirySpec  string // e.g. "@every 1m"
	SavingsMaturitySpec string // e.g. "@every 10m"
}
