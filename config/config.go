package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	Database DatabaseConfig
	Auth     AuthConfig
	Scan     ScanConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Report   ReportConfig
	Location *time.Location
}

type DatabaseConfig struct {
	Driver string // mysql, postgres or memory
	DSN    string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	KioskKey  string // Empty = kiosk without X-Kiosk-Key header
}

type ScanConfig struct {
	GraceMinutes int
	Inference    string // set or last
	LockTimeout  time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type NATSConfig struct {
	URL string
}

type ReportConfig struct {
	Delimiter rune
}

func Load() *Config {
	loc, err := time.LoadLocation(GetEnv("TIMEZONE", "Local"))
	if err != nil {
		loc = time.Local
	}

	delimiter := ','
	if d := GetEnv("CSV_DELIMITER", ","); d != "" {
		delimiter = []rune(d)[0]
	}

	return &Config{
		Port: GetEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Driver: strings.ToLower(GetEnv("DB_DRIVER", "mysql")),
			// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
			DSN: GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/checkrrhh?charset=utf8mb4&parseTime=True&loc=Local"),
		},
		Auth: AuthConfig{
			JWTSecret: GetEnv("JWT_SECRET", "dev-only-secret-change-in-prod"),
			TokenTTL:  GetEnvAsDuration("TOKEN_TTL", 24*time.Hour),
			KioskKey:  GetEnv("KIOSK_KEY", ""),
		},
		Scan: ScanConfig{
			GraceMinutes: GetEnvAsInt("LATE_GRACE_MINUTES", 0),
			Inference:    strings.ToLower(GetEnv("SCAN_INFERENCE", "set")),
			LockTimeout:  GetEnvAsDuration("SCAN_LOCK_TIMEOUT", 3*time.Second),
		},
		Redis: RedisConfig{
			Addr:     GetEnv("REDIS_ADDR", ""),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetEnvAsInt("REDIS_DB", 0),
		},
		NATS: NATSConfig{
			URL: GetEnv("NATS_URL", ""),
		},
		Report: ReportConfig{
			Delimiter: delimiter,
		},
		Location: loc,
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
