package config

import (
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL  = "http://127.0.0.1:9000"
	DefaultBaseURL = "localhost:3000"
)

// Стили отрисовки списка.
const (
	StylePlain = "plain"
	StyleCard  = "card"
)

type Config struct {
	// API settings
	APIURL string `env:"API_URL"`

	// Web front settings
	BaseURL string `env:"BASE_URL"`

	// Client-side settings
	HistoryDSN string `env:"HISTORY_DSN"`
	LogFile    string `env:"LOG_FILE"`
	ListStyle  string `env:"LIST_STYLE"`
	Version    bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают как значения по умолчанию поверх env
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the marketplace API")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address of the web front (host:port)")
	flag.StringVar(&cfg.HistoryDSN, "history-dsn", cfg.HistoryDSN, "path to SQLite history DB or postgres:// DSN")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "path to the client log file")
	flag.StringVar(&cfg.ListStyle, "style", cfg.ListStyle, "item list style: plain|card")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	// API_URL: только абсолютный http(s) URL, иначе значение по умолчанию
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if u, err := url.Parse(cfg.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		cfg.APIURL = DefaultAPIURL
	}

	// BaseURL: "address:port" без схемы и пути
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.ListStyle != StyleCard {
		cfg.ListStyle = StylePlain
	}

	// Fill client defaults if empty
	dataDir := filepath.Join(os.TempDir(), "simplemercari")
	if dir, err := os.UserCacheDir(); err == nil {
		dataDir = filepath.Join(dir, "simplemercari")
	}
	if cfg.HistoryDSN == "" {
		cfg.HistoryDSN = filepath.Join(dataDir, "history.sqlite")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dataDir, "client.log")
	}
}
