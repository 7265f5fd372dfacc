package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"PassKeeper/internal/generator"
)

type Config struct {
	// Storage
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	DatabaseDSN  string `env:"DATABASE_URI"` // если задан, важнее ClientDBPath

	// Web shell
	BaseURL     string `env:"BASE_URL"`
	OpenBrowser bool   `env:"OPEN_BROWSER"`

	// Generator defaults
	PasswordLength int `env:"PASSWORD_LENGTH" envDefault:"12"`
	PasswordCount  int `env:"PASSWORD_COUNT" envDefault:"10"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Version  bool   `env:"-"` // show version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags переопределяют значения из env
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to the SQLite passwords file")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres://... or a SQLite path); overrides -client-db")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "web shell listen address (host:port)")
	flag.BoolVar(&cfg.OpenBrowser, "open", cfg.OpenBrowser, "open the web shell in a browser after start")
	flag.IntVar(&cfg.PasswordLength, "default-length", cfg.PasswordLength, "default password length")
	flag.IntVar(&cfg.PasswordCount, "default-count", cfg.PasswordCount, "default number of passwords")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	// BaseURL: только "address:port", без схемы и пути
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}
	if cfg.PasswordLength < generator.MinLength || cfg.PasswordLength > generator.MaxLength {
		cfg.PasswordLength = generator.DefaultLength
	}
	if cfg.PasswordCount < generator.MinCount || cfg.PasswordCount > generator.MaxCount {
		cfg.PasswordCount = generator.DefaultCount
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ClientDBPath == "" {
		home, _ := os.UserHomeDir()
		cfg.ClientDBPath = filepath.Join(home, ".passkeeper", "passwords.db")
	}
}

// StoreDSN returns the DSN the store is opened with.
func (cfg *Config) StoreDSN() string {
	if cfg.DatabaseDSN != "" {
		return cfg.DatabaseDSN
	}
	return cfg.ClientDBPath
}

// ServerURL is the address the web shell is reachable at.
func (cfg *Config) ServerURL() string {
	return "http://" + cfg.BaseURL
}

// GeneratorDefaults returns letters-only options with the configured length and count.
func (cfg *Config) GeneratorDefaults() generator.Options {
	return generator.Options{Length: cfg.PasswordLength, Count: cfg.PasswordCount}
}
