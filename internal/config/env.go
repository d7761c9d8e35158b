package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// already-set environment variables keep precedence over the file.
//
// Recognized variables:
//
//	PAYLEDGER_RECORDS_FILE   path of the pay record file
//	PAYLEDGER_USERS_FILE     path of the user account file
//	PAYLEDGER_SECRET_KEY     session token signing key
//	PAYLEDGER_SESSION_TTL    session token lifetime (time.ParseDuration form)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PAYLEDGER_RECORDS_FILE"); v != "" {
		cfg.RecordsFile = v
	}
	if v := os.Getenv("PAYLEDGER_USERS_FILE"); v != "" {
		cfg.UsersFile = v
	}
	if v := os.Getenv("PAYLEDGER_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("PAYLEDGER_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTokenValidityDuration = d
		}
	}
}
