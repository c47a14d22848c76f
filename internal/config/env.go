package config

import (
	"os"
	"strconv"
)

// Settings holds the values the shell reads from the environment.
type Settings struct {
	ScoreFile    string
	Seed         int64
	SoundEnabled bool
	LogLevel     string
	LogFormat    string
}

// Load reads Settings from the environment, falling back to defaults for
// unset or unparsable values.
func Load() *Settings {
	return &Settings{
		ScoreFile:    getEnv("CLICKADOT_SCORE_FILE", "scores.txt"),
		Seed:         int64(getEnvInt("CLICKADOT_SEED", 0)),
		SoundEnabled: getEnvBool("CLICKADOT_SOUND", true),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
