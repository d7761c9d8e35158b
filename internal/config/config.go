// Package config handles configuration for the payledger CLI, including
// defaults, .env/environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the payledger CLI.
//
// Fields:
//   - RecordsFile: path of the pipe-delimited employee pay record file.
//   - UsersFile: path of the pipe-delimited user account file.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//     Do not use the default outside local use.
//   - SessionTokenValidityDuration: lifetime of a login session token.
type Config struct {
	RecordsFile                  string
	UsersFile                    string
	SecretKey                    string
	SessionTokenValidityDuration time.Duration
}

// LoadDefaults populates c with sensible defaults for local use.
func (c *Config) LoadDefaults() {
	c.RecordsFile = "employees.txt"
	c.UsersFile = "users.txt"
	c.SecretKey = "secretKey"
	c.SessionTokenValidityDuration = 12 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if given
// via -c/-config), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
