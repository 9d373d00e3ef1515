package models

import (
	"fmt"
	"strings"
)

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Twilio   TwilioConfig
	Auth     AuthConfig
	Logger   LoggerConfig
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

// DatabaseConfig contains database connection configuration.
// Two credential pairs are carried: the restricted role used for ordinary
// reads (subject to row-level security) and the privileged role used for
// provisioning and fallback lookups.
type DatabaseConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	AdminUsername string
	AdminPassword string
	Database      string
	SSLMode       string
	MaxConns      int
	IdleConns     int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TwilioConfig contains Twilio Verify credentials
type TwilioConfig struct {
	AccountSID       string
	AuthToken        string
	VerifyServiceSID string
	BaseURL          string // override for tests; defaults to the Twilio Verify API
	TimeoutSeconds   int
}

// AuthConfig contains login flow tunables
type AuthConfig struct {
	ResendCooldownSeconds int
	FlowTTLMinutes        int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// Validate fails closed when any required credential is absent, so handlers
// never run against a half-configured environment.
func (c *Config) Validate() error {
	var missing []string

	if c.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.Database.Username == "" {
		missing = append(missing, "DB_USERNAME")
	}
	if c.Database.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if c.Database.AdminUsername == "" {
		missing = append(missing, "DB_ADMIN_USERNAME")
	}
	if c.Database.AdminPassword == "" {
		missing = append(missing, "DB_ADMIN_PASSWORD")
	}
	if c.Database.Database == "" {
		missing = append(missing, "DB_DATABASE")
	}
	if c.Twilio.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.Twilio.AuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.Twilio.VerifyServiceSID == "" {
		missing = append(missing, "TWILIO_VERIFY_SERVICE_SID")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
