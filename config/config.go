package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Upstox credentials
	UpstoxAPIKey      string
	UpstoxAPISecret   string
	UpstoxRedirectURL string

	// Infrastructure
	RedisAddr     string
	RedisPassword string
	SQLitePath    string
	JournalPath   string
	MetricsAddr   string

	// Screening
	Workers           int
	SymbolTimeout     time.Duration
	RefreshInterval   time.Duration
	LookbackDays      int
	IntradayInterval  int
	SyntheticFallback bool

	// Bracket trade parameters, in percent
	BuyBufferPct    float64
	ProfitTargetPct float64
	PaperTrading    bool

	// Notifications (all optional)
	WebhookURL       string
	TelegramBotToken string
	TelegramChatID   string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is folded in first when
// present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] .env not loaded: %v", err)
	}

	return &Config{
		UpstoxAPIKey:      mustEnv("UPSTOX_API_KEY"),
		UpstoxAPISecret:   mustEnv("UPSTOX_API_SECRET"),
		UpstoxRedirectURL: getEnv("UPSTOX_REDIRECT_URL", "http://localhost:8080/callback"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "data/screener.db"),
		JournalPath:   getEnv("JOURNAL_PATH", "data/trades.db"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":9090"),

		Workers:           getEnvInt("SCREEN_WORKERS", 50),
		SymbolTimeout:     getEnvDuration("SYMBOL_TIMEOUT", 5*time.Second),
		RefreshInterval:   getEnvDuration("REFRESH_INTERVAL", 5*time.Minute),
		LookbackDays:      getEnvInt("LOOKBACK_DAYS", 120),
		IntradayInterval:  getEnvInt("INTRADAY_INTERVAL", 1),
		SyntheticFallback: getEnvBool("SYNTHETIC_FALLBACK", false),

		BuyBufferPct:    getEnvFloat("BUY_BUFFER_PCT", 0.2),
		ProfitTargetPct: getEnvFloat("PROFIT_TARGET_PCT", 2.5),
		PaperTrading:    getEnvBool("PAPER_TRADING", true),

		WebhookURL:       getEnv("WEBHOOK_URL", ""),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("[config] required env var %s not set", key)
	}
	return v
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
