package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local runs) and the
// environment.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ledger-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Pricing config
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "USD")
	configs.Pricing.TransferFeeBps = int64(GetEnvAsInt("PRICING_TRANSFER_FEE_BPS", 200))
	configs.Pricing.EarlyBreakFeeBps = int64(GetEnvAsInt("PRICING_EARLY_BREAK_FEE_BPS", 500))
	configs.Pricing.InstantWithdrawBps = int64(GetEnvAsInt("PRICING_INSTANT_WITHDRAW_BPS", 200))
	configs.Pricing.IdempotencyTTLMins = GetEnvAsInt("PRICING_IDEMPOTENCY_TTL_MINS", 1440)

	// Ledger config
	configs.Ledger.FeeAccountID = GetEnv("LEDGER_FEE_ACCOUNT_ID", "")

	// Processor config
	configs.Processor.BaseURL = GetEnv("PROCESSOR_BASE_URL", "")
	configs.Processor.APIKey = GetEnv("PROCESSOR_API_KEY", "")
	configs.Processor.TimeoutSeconds = GetEnvAsInt("PROCESSOR_TIMEOUT_SECONDS", 10)

	// Scheduler config
	configs.Scheduler.GeofenceExpirySpec = GetEnv("SCHEDULER_GEOFENCE_EXPIRY_SPEC", "@every 1m")
	configs.Scheduler.SavingsMaturitySpec = GetEnv("SCHEDULER_SAVINGS_MATURITY_SPEC", "@every 10m")

	return configs
}

// GetEnv retrieves an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt retrieves an environment variable as an integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// GetEnvAsBool retrieves an environment variable as a boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}
