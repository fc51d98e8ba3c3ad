package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage and sequence backends.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	StorageBackend  string // postgres | memory
	SequenceBackend string // postgres | redis | memory

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string // Empty disables event publishing
	KafkaTopic   string

	CurrencyPrecision int32

	JWTSecret          string // Empty disables authentication
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("STORAGE_BACKEND", BackendPostgres)
	v.SetDefault("SEQUENCE_BACKEND", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "ledger.entries")
	v.SetDefault("CURRENCY_PRECISION", 2)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.StorageBackend = strings.ToLower(v.GetString("STORAGE_BACKEND"))
	switch cfg.StorageBackend {
	case BackendPostgres, BackendMemory:
	default:
		log.Printf("Warning: unknown STORAGE_BACKEND %q. Defaulting to %s.\n", cfg.StorageBackend, BackendPostgres)
		cfg.StorageBackend = BackendPostgres
	}

	// Sequences live with the entries unless told otherwise
	cfg.SequenceBackend = strings.ToLower(v.GetString("SEQUENCE_BACKEND"))
	switch cfg.SequenceBackend {
	case "":
		cfg.SequenceBackend = cfg.StorageBackend
	case BackendPostgres, BackendMemory, BackendRedis:
	default:
		log.Printf("Warning: unknown SEQUENCE_BACKEND %q. Defaulting to %s.\n", cfg.SequenceBackend, cfg.StorageBackend)
		cfg.SequenceBackend = cfg.StorageBackend
	}
	if cfg.SequenceBackend == BackendPostgres && cfg.StorageBackend == BackendMemory {
		log.Println("Warning: SEQUENCE_BACKEND=postgres needs STORAGE_BACKEND=postgres. Using memory sequences.")
		cfg.SequenceBackend = BackendMemory
	}

	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.RedisPassword = v.GetString("REDIS_PASSWORD")
	cfg.RedisDB = v.GetInt("REDIS_DB")

	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaTopic = v.GetString("KAFKA_TOPIC")

	precision := v.GetInt("CURRENCY_PRECISION")
	if precision < 0 || precision > 8 {
		log.Printf("Warning: invalid CURRENCY_PRECISION %d. Defaulting to 2.\n", precision)
		precision = 2
	}
	cfg.CurrencyPrecision = int32(precision)

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set. The API is served without authentication.")
	}
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg
}

// splitList splits a comma separated value, dropping blanks.
func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
