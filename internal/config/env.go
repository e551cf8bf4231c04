package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are process-wide options read from the environment.
type Settings struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DBPath        string
	LogLevel      string
}

// DefaultDBPath is used when TRIPGAMES_DB is unset.
const DefaultDBPath = "~/.tripgames/scores.db"

// LoadSettings reads TRIPGAMES_* variables. Missing .env files are ignored;
// variables already set in the environment win over file values.
func LoadSettings(files ...string) Settings {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else {
		for _, f := range files {
			_ = godotenv.Load(f)
		}
	}

	s := Settings{
		RedisAddr:     os.Getenv("TRIPGAMES_REDIS_ADDR"),
		RedisPassword: os.Getenv("TRIPGAMES_REDIS_PASSWORD"),
		DBPath:        os.Getenv("TRIPGAMES_DB"),
		LogLevel:      os.Getenv("TRIPGAMES_LOG_LEVEL"),
	}
	if v := os.Getenv("TRIPGAMES_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.RedisDB = n
		}
	}
	if s.DBPath == "" {
		s.DBPath = DefaultDBPath
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return s
}
