// Package config loads runtime settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ermek/bilim/internal/exercise"
	"github.com/ermek/bilim/internal/mathgen"
)

type Config struct {
	DBPath        string // empty means the default data-dir location
	QuestionCount int    // questions per math batch
	TimerSecs     int    // per-question answer window for math
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DBPath:        envOr("BILIM_DB", ""),
		QuestionCount: envIntOr("BILIM_QUESTIONS", mathgen.DefaultBatchSize),
		TimerSecs:     envIntOr("BILIM_TIMER_SECS", exercise.MathTimerSecs),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
