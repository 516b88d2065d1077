package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	AppEnv     string
	ServerPort string

	DBDriver string
	DBUrl    string

	JWTSecret     string
	AdminUsername string
	AdminPassword string

	UploadsDir          string
	UploadsPublicPrefix string
	UploadMaxBytes      int64
	MasterPhotoMaxPx    int

	StorageDriver     string
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	NotifyTimeout  time.Duration
	TelegramAPIURL string

	CORSAllowedOrigins []string

	OrphanSweepSpec string
	OrphanMinAge    time.Duration

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	v := viper.New()
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "database.sqlite")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("UPLOADS_DIR", "uploads")
	v.SetDefault("UPLOADS_PUBLIC_PREFIX", "/uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	v.SetDefault("MASTER_PHOTO_MAX_PX", 1200)
	v.SetDefault("STORAGE_DRIVER", StorageLocal)
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_PUBLIC_BASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "60s")
	v.SetDefault("NOTIFY_TIMEOUT", "5s")
	v.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("ORPHAN_SWEEP_SPEC", "@every 6h")
	v.SetDefault("ORPHAN_MIN_AGE", "1h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.AutomaticEnv()

	cfg := &Config{
		AppEnv:     v.GetString("APP_ENV"),
		ServerPort: v.GetString("SERVER_PORT"),

		DBDriver: strings.ToLower(v.GetString("DB_DRIVER")),
		DBUrl:    v.GetString("DATABASE_URL"),

		JWTSecret:     v.GetString("JWT_SECRET"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),

		UploadsDir:          v.GetString("UPLOADS_DIR"),
		UploadsPublicPrefix: "/" + strings.Trim(v.GetString("UPLOADS_PUBLIC_PREFIX"), "/"),
		UploadMaxBytes:      v.GetInt64("UPLOAD_MAX_BYTES"),
		MasterPhotoMaxPx:    v.GetInt("MASTER_PHOTO_MAX_PX"),

		StorageDriver:     strings.ToLower(v.GetString("STORAGE_DRIVER")),
		S3Bucket:          v.GetString("S3_BUCKET"),
		S3Region:          v.GetString("S3_REGION"),
		S3Endpoint:        v.GetString("S3_ENDPOINT"),
		S3AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		S3PublicBaseURL:   strings.TrimRight(v.GetString("S3_PUBLIC_BASE_URL"), "/"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		CacheTTL:      v.GetDuration("CACHE_TTL"),

		NotifyTimeout:  v.GetDuration("NOTIFY_TIMEOUT"),
		TelegramAPIURL: strings.TrimRight(v.GetString("TELEGRAM_API_URL"), "/"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		OrphanSweepSpec: v.GetString("ORPHAN_SWEEP_SPEC"),
		OrphanMinAge:    v.GetDuration("ORPHAN_MIN_AGE"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}

	if cfg.JWTSecret == "" {
		// Tokens issued with a per-process secret do not survive restarts.
		cfg.JWTSecret = uuid.NewString() + uuid.NewString()
		log.Warn().Msg("JWT_SECRET not set, using a random secret for this process")
	}

	return cfg
}

// Validate reports configuration that cannot work at all.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.StorageDriver {
	case StorageLocal:
	case StorageS3:
		if c.S3Bucket == "" || c.S3PublicBaseURL == "" {
			return fmt.Errorf("S3_BUCKET and S3_PUBLIC_BASE_URL are required for s3 storage")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
