// Package config loads the backend settings. Values come from an optional YAML
// file (CONFIG_PATH), then a .env file, then the process environment; later
// sources override earlier ones.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type Database struct {
	Driver   string `yaml:"driver"` // postgres|sqlite
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslMode"`
	// Source is the sqlite file (or :memory:).
	Source string `yaml:"source"`
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type Redis struct {
	Addr     string `yaml:"addr"` // empty disables room events
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Auth struct {
	JWTSecret          string        `yaml:"jwtSecret"`
	JWTExpiresIn       time.Duration `yaml:"jwtExpiresIn"`
	OperatorSecretCode string        `yaml:"operatorSecretCode"`
}

type Telegram struct {
	BotToken    string `yaml:"botToken"` // empty disables staff alerts
	StaffChatID int64  `yaml:"staffChatId"`
}

type Logging struct {
	Env       string `yaml:"env"`     // dev|stage|prod
	Backend   string `yaml:"backend"` // std|zap
	Debug     bool   `yaml:"debug"`
	AddSource bool   `yaml:"addSource"`
	Version   string `yaml:"version"`
}

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Database Database `yaml:"database"`
	Redis    Redis    `yaml:"redis"`
	Auth     Auth     `yaml:"auth"`
	Telegram Telegram `yaml:"telegram"`
	Logging  Logging  `yaml:"logging"`
}

// Default returns the settings used for local development.
func Default() *Config {
	return &Config{
		HTTP: HTTP{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		},
		Database: Database{
			Driver:  "postgres",
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "hotel_db",
			SSLMode: "disable",
			Source:  "hotelchat.db",
		},
		Auth: Auth{
			JWTSecret:    "changeme",
			JWTExpiresIn: 24 * time.Hour,
		},
		Logging: Logging{
			Env:     "dev",
			Backend: "std",
			Version: "v0.1.0",
		},
	}
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; continuing with environment variables")
	}
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTP.Addr = getEnv("HTTP_ADDR", c.HTTP.Addr)
	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		c.HTTP.AllowedOrigins = splitList(origins)
	}

	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.Source = getEnv("DB_SOURCE", c.Database.Source)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvAsInt("REDIS_DB", c.Redis.DB)

	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.JWTExpiresIn = getEnvAsDuration("JWT_EXPIRES_IN", c.Auth.JWTExpiresIn)
	c.Auth.OperatorSecretCode = getEnv("OPERATOR_SECRET_CODE", c.Auth.OperatorSecretCode)

	c.Telegram.BotToken = getEnv("TELEGRAM_BOT_TOKEN", c.Telegram.BotToken)
	c.Telegram.StaffChatID = int64(getEnvAsInt("TELEGRAM_STAFF_CHAT_ID", int(c.Telegram.StaffChatID)))

	c.Logging.Env = getEnv("LOG_ENV", c.Logging.Env)
	c.Logging.Backend = getEnv("LOG_BACKEND", c.Logging.Backend)
	c.Logging.Debug = getEnvAsBool("LOG_DEBUG", c.Logging.Debug)
	c.Logging.AddSource = getEnvAsBool("LOG_ADD_SOURCE", c.Logging.AddSource)
	c.Logging.Version = getEnv("APP_VERSION", c.Logging.Version)
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Auth.JWTExpiresIn <= 0 {
		c.Auth.JWTExpiresIn = 24 * time.Hour
	}
	if c.IsProduction() && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == "changeme") {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required")
	}
	if c.Telegram.BotToken != "" && c.Telegram.StaffChatID == 0 {
		return errors.New("TELEGRAM_STAFF_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return nil
}

// IsProduction reports whether the logging env names a production deployment.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Logging.Env)
	return env == "prod" || env == "production"
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(strValue)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(strValue)
	if err != nil || d <= 0 {
		log.Printf("Warning: could not parse env var %s as duration. Using default value.", key)
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
