package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}

	return asBool
}

// MediaConfig holds the credentials for the external media host.
type MediaConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	Folder        string
	PublicBaseURL string
	UseSSL        bool
}

// Config is the process-wide configuration, constructed once at startup and
// passed by reference into the components that need it.
type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	TokenTTL        time.Duration
	AcceptedOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Media MediaConfig
}

// Load builds a Config from the process environment.
func Load() (*Config, error) {
	c := New()

	cfg := &Config{
		Port:            GetString(c, "PORT", "8080"),
		Env:             GetString(c, "APP_ENV", "development"),
		MongoURI:        GetString(c, "MONGO_URI", ""),
		MongoDatabase:   GetString(c, "MONGO_DB", "portfolio"),
		JWTSecret:       GetString(c, "JWT_SECRET", ""),
		TokenTTL:        time.Duration(GetInt(c, "TOKEN_TTL_HOURS", 5)) * time.Hour,
		AcceptedOrigins: strings.Split(GetString(c, "ACCEPTED_ORIGINS", "*"), ","),
		ReadTimeout:     time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout:    time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:     time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,
		Media: MediaConfig{
			Endpoint:      GetString(c, "MEDIA_ENDPOINT", ""),
			AccessKey:     GetString(c, "MEDIA_ACCESS_KEY", ""),
			SecretKey:     GetString(c, "MEDIA_SECRET_KEY", ""),
			Bucket:        GetString(c, "MEDIA_BUCKET", "portfolio"),
			Folder:        GetString(c, "MEDIA_FOLDER", "portfolio"),
			PublicBaseURL: GetString(c, "MEDIA_PUBLIC_BASE_URL", ""),
			UseSSL:        GetBool(c, "MEDIA_USE_SSL", true),
		},
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs in production mode. Stack
// traces are only included in error responses outside production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
