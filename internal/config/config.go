// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// OTP challenge stores selectable with OTP_STORE.
const (
	OTPStoreMemory   = "memory"
	OTPStorePostgres = "postgres"
	OTPStoreRedis    = "redis"
)

// Config holds server configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN. Empty runs the server on in-memory repositories.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// RedisURL is the Redis URL (redis://host:6379/0) used when OTPStore is redis.
	RedisURL string `mapstructure:"REDIS_URL"`
	// OTPStore selects where pending challenges live: memory, postgres or redis.
	OTPStore string `mapstructure:"OTP_STORE"`

	OTPDigits        int           `mapstructure:"OTP_DIGITS"`
	OTPTTL           time.Duration `mapstructure:"OTP_TTL"`
	OTPMaxAttempts   int           `mapstructure:"OTP_MAX_ATTEMPTS"`
	OTPSendLimit     int           `mapstructure:"OTP_SEND_LIMIT"`
	OTPSendWindow    time.Duration `mapstructure:"OTP_SEND_WINDOW"`
	OTPAllowedPrefix string        `mapstructure:"OTP_ALLOWED_PREFIX"`

	// JWTPrivateKey is the PEM-encoded private key (RSA or ECDSA) or path to file.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	// JWTPublicKey is the PEM-encoded public key or path to file. Derived from the private key when empty.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	JWTIssuer    string `mapstructure:"JWT_ISSUER"`
	JWTAudience  string `mapstructure:"JWT_AUDIENCE"`
	// JWTAccessTTL is the access token and session lifetime (e.g. "720h").
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`

	// SMSLocalAPIKey is the API key for SMS Local. Without it (and without dev OTP) codes cannot be delivered.
	SMSLocalAPIKey string `mapstructure:"SMS_LOCAL_API_KEY"`
	// SMSLocalSender is the optional sender ID for SMS Local.
	SMSLocalSender string `mapstructure:"SMS_LOCAL_SENDER"`
	// SMSLocalBaseURL is the SMS Local API base URL.
	SMSLocalBaseURL string `mapstructure:"SMS_LOCAL_BASE_URL"`
	// OTPReturnToClient enables dev OTP mode: no SMS, the code is readable via DevService.GetOTP.
	// Must not be true when Env is production.
	OTPReturnToClient bool `mapstructure:"OTP_RETURN_TO_CLIENT"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`

	// OTLPEndpoint is the OTLP gRPC collector (host:port or URL). Empty disables export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// OTLPInsecure forces a plaintext connection to the collector.
	OTLPInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	ServiceName  string `mapstructure:"OTEL_SERVICE_NAME"`

	// KafkaBrokers is a comma-separated list of Kafka broker addresses. Empty disables the event producer.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// KafkaTopic is the topic auth and RPC events are produced to.
	KafkaTopic string `mapstructure:"TELEMETRY_KAFKA_TOPIC"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := newViper()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("OTP_STORE", OTPStoreMemory)
	v.SetDefault("OTP_DIGITS", 4)
	v.SetDefault("OTP_TTL", "5m")
	v.SetDefault("OTP_MAX_ATTEMPTS", 5)
	v.SetDefault("OTP_SEND_LIMIT", 3)
	v.SetDefault("OTP_SEND_WINDOW", "10m")
	v.SetDefault("OTP_ALLOWED_PREFIX", "+243")
	v.SetDefault("JWT_PRIVATE_KEY", "")
	v.SetDefault("JWT_PUBLIC_KEY", "")
	v.SetDefault("JWT_ISSUER", "likelemba-auth")
	v.SetDefault("JWT_AUDIENCE", "likelemba-api")
	v.SetDefault("JWT_ACCESS_TTL", "720h")
	v.SetDefault("SMS_LOCAL_API_KEY", "")
	v.SetDefault("SMS_LOCAL_SENDER", "")
	v.SetDefault("SMS_LOCAL_BASE_URL", "https://app.smslocal.in/api/smsapi")
	v.SetDefault("OTP_RETURN_TO_CLIENT", false)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SERVICE_NAME", "likelemba")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("TELEMETRY_KAFKA_TOPIC", "likelemba-events")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.GRPCAddr == "" {
		return errors.New("config: GRPC_ADDR must be set")
	}
	if c.OTPReturnToClient && c.Env == "production" {
		return errors.New("config: OTP_RETURN_TO_CLIENT must not be true when APP_ENV=production")
	}
	if c.OTPDigits != 4 {
		return fmt.Errorf("config: OTP_DIGITS must be 4, got %d", c.OTPDigits)
	}
	if c.OTPTTL <= 0 || c.OTPSendWindow <= 0 {
		return errors.New("config: OTP_TTL and OTP_SEND_WINDOW must be positive")
	}
	if c.OTPMaxAttempts < 1 || c.OTPSendLimit < 1 {
		return errors.New("config: OTP_MAX_ATTEMPTS and OTP_SEND_LIMIT must be at least 1")
	}
	if !strings.HasPrefix(c.OTPAllowedPrefix, "+") {
		return fmt.Errorf("config: OTP_ALLOWED_PREFIX must start with +, got %q", c.OTPAllowedPrefix)
	}
	switch c.OTPStore {
	case OTPStoreMemory:
	case OTPStorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: OTP_STORE=postgres requires DATABASE_URL")
		}
	case OTPStoreRedis:
		if c.RedisURL == "" {
			return errors.New("config: OTP_STORE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("config: unknown OTP_STORE %q (want memory, postgres or redis)", c.OTPStore)
	}
	return nil
}

// AccessTTL parses JWTAccessTTL as a time.Duration. Returns 720h if unset or invalid.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTAccessTTL)
	if err != nil || d <= 0 {
		return 720 * time.Hour
	}
	return d
}

// KafkaBrokersList returns Kafka broker addresses from the comma-separated config.
func (c *Config) KafkaBrokersList() []string {
	if c == nil {
		return nil
	}
	return splitList(c.KafkaBrokers)
}

// ClientConfig configures the terminal client.
type ClientConfig struct {
	// ServerAddr is the gRPC server address (host:port).
	ServerAddr string `mapstructure:"SERVER_ADDR"`
	// DBPath is the SQLite file caching the signed-in session.
	DBPath string `mapstructure:"CLIENT_DB_PATH"`
	// RequestTimeout bounds each RPC.
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
}

// LoadClient reads the client configuration the same way Load does.
func LoadClient() (*ClientConfig, error) {
	v := newViper()
	v.SetDefault("SERVER_ADDR", "localhost:8080")
	v.SetDefault("CLIENT_DB_PATH", "likelemba.db")
	v.SetDefault("REQUEST_TIMEOUT", "10s")

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.ServerAddr) == "" {
		return nil, errors.New("config: SERVER_ADDR must be set")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("config: REQUEST_TIMEOUT must be positive")
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound
	v.AutomaticEnv()
	return v
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
