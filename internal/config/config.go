package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App           AppConfig
	Postgres      PostgresConfig
	AdminPostgres PostgresConfig
	Redis         RedisConfig
	Logger        LoggerConfig
	Auth          AuthConfig
	Assets        AssetConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication and authorization parameters.
type AuthConfig struct {
	JWTSecret              string
	AccessTokenTTLMinutes  int
	BcryptCost             int
	MinPasswordLength      int
	ProfileCacheTTLSeconds int
	ExecutiveRanks         []string
}

// AssetConfig holds the asset host credentials and upload limits.
type AssetConfig struct {
	CloudName      string
	APIKey         string
	APISecret      string
	RootFolder     string
	MaxUploadBytes int
}

var defaultExecutiveRanks = []string{
	"Commander",
	"Deputy Commander",
	"Captain III",
	"Captain II",
	"Captain I",
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	userPG := loadPostgres("POSTGRES")
	adminPG := loadPostgres("POSTGRES_ADMIN")
	// the privileged handle runs migrations; the user-scoped one never does
	userPG.RunMigrations = false

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "frakhub-admin"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres:      userPG,
		AdminPostgres: adminPG,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:              getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes:  getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:             getEnvAsInt("AUTH_BCRYPT_COST", 12),
			MinPasswordLength:      getEnvAsInt("AUTH_MIN_PASSWORD_LENGTH", 6),
			ProfileCacheTTLSeconds: getEnvAsInt("AUTH_PROFILE_CACHE_TTL_SECONDS", 30),
			ExecutiveRanks:         getEnvAsList("AUTH_EXECUTIVE_RANKS", defaultExecutiveRanks),
		},
		Assets: AssetConfig{
			CloudName:      os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:         os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:      os.Getenv("CLOUDINARY_API_SECRET"),
			RootFolder:     getEnv("CLOUDINARY_ROOT_FOLDER", "frakhub"),
			MaxUploadBytes: getEnvAsInt("ASSET_MAX_UPLOAD_BYTES", 5*1024*1024),
		},
	}

	if cfg.AdminPostgres.DSN == "" {
		cfg.AdminPostgres.DSN = cfg.Postgres.DSN
	}

	return cfg, nil
}

func loadPostgres(prefix string) PostgresConfig {
	return PostgresConfig{
		DSN:            os.Getenv(prefix + "_DSN"),
		MaxConns:       int32(getEnvAsInt(prefix+"_MAX_CONNS", 10)),
		MinConns:       int32(getEnvAsInt(prefix+"_MIN_CONNS", 2)),
		RunMigrations:  getEnvAsBool(prefix+"_RUN_MIGRATIONS", true),
		ConnMaxIdleSec: int32(getEnvAsInt(prefix+"_CONN_MAX_IDLE_SECONDS", 30)),
		ConnMaxLifeSec: int32(getEnvAsInt(prefix+"_CONN_MAX_LIFE_SECONDS", 300)),
	}
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ProfileCacheTTL returns how long caller profiles stay cached.
func (a AuthConfig) ProfileCacheTTL() time.Duration {
	if a.ProfileCacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(a.ProfileCacheTTLSeconds) * time.Second
}

// Configured reports whether asset host credentials are present.
func (a AssetConfig) Configured() bool {
	return a.CloudName != "" && a.APIKey != "" && a.APISecret != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
