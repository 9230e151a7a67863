package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
	Seed   SeedConfig   `yaml:"seed"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	AllowOrigin string `yaml:"allow_origin"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	// JWTSecret enables bearer token validation when set.
	JWTSecret string `yaml:"jwt_secret"`
}

// SeedConfig points at the read-only case catalogue imported on startup.
// An empty Host means the built-in seed is used.
type SeedConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			AllowOrigin: "*",
		},
		Log: LogConfig{Level: "info"},
		Seed: SeedConfig{
			Port:    "5432",
			SSLMode: "require",
		},
	}
}

// Load reads .env, then the optional YAML file at path (or CASEDESK_CONFIG_PATH),
// then environment overrides.
func Load(path string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("CASEDESK_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN returns the postgres connection string for the seed catalogue.
func (s SeedConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", s.User, s.Password, s.Host, s.Port, s.DBName, s.SSLMode)
}

func (s SeedConfig) Enabled() bool {
	return s.Host != ""
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if host := env("CASEDESK_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := env("CASEDESK_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid CASEDESK_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if origin := env("CASEDESK_ALLOW_ORIGIN"); origin != "" {
		cfg.Server.AllowOrigin = origin
	}
	if level := env("CASEDESK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if secret := env("CASEDESK_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	// Seed database keys keep the plain names used by the hosted Postgres .env files.
	if v := env("host"); v != "" {
		cfg.Seed.Host = v
	}
	if v := env("port"); v != "" {
		cfg.Seed.Port = v
	}
	if v := env("user"); v != "" {
		cfg.Seed.User = v
	}
	if v := env("password"); v != "" {
		cfg.Seed.Password = v
	}
	if v := env("dbname"); v != "" {
		cfg.Seed.DBName = v
	}
	if v := env("sslmode"); v != "" {
		cfg.Seed.SSLMode = v
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
