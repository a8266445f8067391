package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.temporal.io/sdk/client"

	"github.com/petcare/petcare-api/internal/domains/auth/adapters/token"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

const envProduction = "production"

// ErrMissingJWTSecret is returned in production when auth is mounted without JWT_SECRET.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required in production")

// Config carries environment-driven settings for the API process.
type Config struct {
	Env     string
	Port    string
	Profile rules.Profile

	PostgresDSN string
	RedisURL    string

	JWTSecret string
	// JWTSecretGenerated is set when a throwaway development secret was created.
	JWTSecretGenerated bool
	JWTExpiration      time.Duration
	SessionTTL         time.Duration
	BcryptCost         int

	UploadDir     string
	PublicBaseURL string

	CORSOrigin         string
	RateLimitPerMinute int

	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool

	SessionPurgeInterval time.Duration
}

// Production reports whether APP_ENV is production.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, envProduction)
}

// LoadConfig reads an optional .env file and the environment, applies defaults,
// and validates basic constraints. defaultProfile applies when APP_PROFILE is unset.
func LoadConfig(defaultProfile rules.Name) (Config, error) {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PROFILE", string(defaultProfile))
	v.SetDefault("PORT", "3000")
	v.SetDefault("POSTGRES_DSN", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION_HOURS", 8)
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	v.SetDefault("CORS_ORIGIN", "http://localhost:8081")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 300)
	v.SetDefault("TEMPORAL_ADDRESS", client.DefaultHostPort)
	v.SetDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace)
	v.SetDefault("TEMPORAL_DISABLED", false)
	v.SetDefault("SESSION_PURGE_INTERVAL_MINUTES", 0)

	profile, err := rules.Lookup(v.GetString("APP_PROFILE"))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Env:                  strings.TrimSpace(v.GetString("APP_ENV")),
		Port:                 strings.TrimSpace(v.GetString("PORT")),
		Profile:              profile,
		PostgresDSN:          strings.TrimSpace(v.GetString("POSTGRES_DSN")),
		RedisURL:             strings.TrimSpace(v.GetString("REDIS_URL")),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTExpiration:        time.Duration(v.GetInt("JWT_EXPIRATION_HOURS")) * time.Hour,
		SessionTTL:           time.Duration(v.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		BcryptCost:           v.GetInt("BCRYPT_COST"),
		UploadDir:            strings.TrimSpace(v.GetString("UPLOAD_DIR")),
		PublicBaseURL:        strings.TrimSpace(v.GetString("PUBLIC_BASE_URL")),
		CORSOrigin:           strings.TrimSpace(v.GetString("CORS_ORIGIN")),
		RateLimitPerMinute:   v.GetInt("RATE_LIMIT_PER_MINUTE"),
		TemporalAddress:      strings.TrimSpace(v.GetString("TEMPORAL_ADDRESS")),
		TemporalNamespace:    strings.TrimSpace(v.GetString("TEMPORAL_NAMESPACE")),
		TemporalDisabled:     v.GetBool("TEMPORAL_DISABLED"),
		SessionPurgeInterval: time.Duration(v.GetInt("SESSION_PURGE_INTERVAL_MINUTES")) * time.Minute,
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be a positive integer")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be a positive integer")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.SessionPurgeInterval < 0 {
		return fmt.Errorf("SESSION_PURGE_INTERVAL_MINUTES must not be negative")
	}
	if !c.Profile.AuthEnabled {
		return nil
	}
	if c.JWTSecret == "" {
		if c.Production() {
			return ErrMissingJWTSecret
		}
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		c.JWTSecret = secret
		c.JWTSecretGenerated = true
		return nil
	}
	if len(c.JWTSecret) < token.MinSecretLength {
		return fmt.Errorf("%w: JWT_SECRET needs at least %d bytes", token.ErrWeakSecret, token.MinSecretLength)
	}
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, token.MinSecretLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate development JWT secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

