// internal/config/config.go
//
// Environment-driven configuration shared by every program in the module.
//
// Load() reads an optional .env file (via godotenv) and then the process
// environment. Unset or empty keys fall back to development defaults.
//
// Environment variables:
//   LOG_LEVEL          zerolog level name (debug, info, warn, ...)
//   PORT               HTTP listen port for go-server
//   CLIENT_ORIGIN      single origin allowed by CORS
//   SESSION_SECRET     HS256 key for game session tokens
//   SESSION_TTL_HOURS  session token lifetime
//   DAILY_SALT         HMAC salt for the daily number
//   GUESS_MODE         "random" or "daily" for the guessing-game CLI

package config

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds resolved settings.
type Config struct {
	LogLevel      string
	Port          string
	ClientOrigin  string
	SessionSecret string
	SessionTTL    time.Duration
	DailySalt     string
	GuessMode     string
}

// Load resolves configuration. defaultLevel is used when LOG_LEVEL is unset,
// so interactive tools can stay quiet while the server logs at info.
func Load(defaultLevel string) Config {
	_ = godotenv.Load()
	return Config{
		LogLevel:      getEnv("LOG_LEVEL", defaultLevel),
		Port:          getEnv("PORT", "5175"),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		SessionSecret: getEnv("SESSION_SECRET", "dev_secret_change_me"),
		SessionTTL:    time.Duration(envInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
		GuessMode:     getEnv("GUESS_MODE", "random"),
	}
}

// SetupLogging configures the global zerolog logger. With pretty set, logs
// are rendered for humans (used by the CLIs on stderr); otherwise JSON.
// An unknown level name leaves the current global level untouched.
func SetupLogging(level string, w io.Writer, pretty bool) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def when unset or malformed.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
