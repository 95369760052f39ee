package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendMySQL    = "mysql"
	BackendLocal    = "local"
)

type SupabaseConfig struct {
	URL        string `env:"URL"`
	ServiceKey string `env:"API_KEY"`
	AnonKey    string `env:"ANON_KEY"`
	JWTSecret  string `env:"JWT_SECRET"`
}

// PublicKey is the key used for identity calls; it falls back to the service key.
func (s SupabaseConfig) PublicKey() string {
	if s.AnonKey != "" {
		return s.AnonKey
	}
	return s.ServiceKey
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type MongoConfig struct {
	URI    string `env:"URI"`
	DBName string `env:"DB_NAME" envDefault:"blog"`
}

// Config is loaded from the environment, optionally seeded from a .env file.
type Config struct {
	Port          string `env:"PORT" envDefault:"3000"`
	Env           string `env:"APP_ENV"`
	SessionSecret string `env:"SESSION_SECRET"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	PostBackend     string `env:"POST_BACKEND" envDefault:"supabase"`
	SessionBackend  string `env:"SESSION_BACKEND" envDefault:"memory"`
	IdentityBackend string `env:"IDENTITY_BACKEND" envDefault:"supabase"`

	Supabase    SupabaseConfig `envPrefix:"SUPABASE_"`
	DatabaseURL string         `env:"DATABASE_URL"`
	MySQLDSN    string         `env:"MYSQL_DSN"`
	Mongo       MongoConfig    `envPrefix:"MONGO_"`
	Redis       RedisConfig    `envPrefix:"REDIS_"`
}

// Load reads envFile (if it exists) and parses the environment into a Config.
// An empty envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Sanitize()

	return cfg, nil
}

// Sanitize normalizes selector values and resolves the environment name.
// NODE_ENV is honoured when APP_ENV is unset.
func (c *Config) Sanitize() {
	c.PostBackend = strings.ToLower(strings.TrimSpace(c.PostBackend))
	c.SessionBackend = strings.ToLower(strings.TrimSpace(c.SessionBackend))
	c.IdentityBackend = strings.ToLower(strings.TrimSpace(c.IdentityBackend))
	c.Supabase.URL = strings.TrimRight(strings.TrimSpace(c.Supabase.URL), "/")

	if c.Env == "" {
		c.Env = os.Getenv("NODE_ENV")
	}
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))

	if c.BackendTimeout <= 0 {
		c.BackendTimeout = 10 * time.Second
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func (c *Config) UsesSupabase() bool {
	return c.PostBackend == BackendSupabase || c.IdentityBackend == BackendSupabase
}

func (c *Config) UsesMySQL() bool {
	return c.SessionBackend == BackendMySQL || c.IdentityBackend == BackendLocal
}

// Validate reports every missing or invalid setting the selected backends need.
func (c *Config) Validate() error {
	var errs []error

	switch c.PostBackend {
	case BackendSupabase, BackendPostgres, BackendMongo:
	default:
		errs = append(errs, fmt.Errorf("POST_BACKEND %q is not one of supabase, postgres, mongo", c.PostBackend))
	}
	switch c.SessionBackend {
	case BackendMemory, BackendRedis, BackendMySQL:
	default:
		errs = append(errs, fmt.Errorf("SESSION_BACKEND %q is not one of memory, redis, mysql", c.SessionBackend))
	}
	switch c.IdentityBackend {
	case BackendSupabase, BackendLocal:
	default:
		errs = append(errs, fmt.Errorf("IDENTITY_BACKEND %q is not one of supabase, local", c.IdentityBackend))
	}

	if c.UsesSupabase() {
		if c.Supabase.URL == "" {
			errs = append(errs, errors.New("SUPABASE_URL is not set in environment"))
		}
		if c.Supabase.ServiceKey == "" {
			errs = append(errs, errors.New("SUPABASE_API_KEY is not set in environment"))
		}
	}
	if c.PostBackend == BackendPostgres && c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is not set in environment"))
	}
	if c.PostBackend == BackendMongo && c.Mongo.URI == "" {
		errs = append(errs, errors.New("MONGO_URI is not set in environment"))
	}
	if c.UsesMySQL() && c.MySQLDSN == "" {
		errs = append(errs, errors.New("MYSQL_DSN is not set in environment"))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is not set in environment"))
	}

	return errors.Join(errs...)
}
