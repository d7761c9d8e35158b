package config

import (
	"encoding/json"
	"os"

	"payledger/internal/flagx"
	"payledger/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the session lifetime either as a string
// like "12h" or as integer nanoseconds.
type JsonConfig struct {
	RecordsFile          string         `json:"records_file"`
	UsersFile            string         `json:"users_file"`
	SecretKey            string         `json:"secret_key"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flag. If no flag is given the function returns without changes.
// Fields absent from the JSON keep their previous values. Read or unmarshal
// errors panic; config is resolved once at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	applyJsonFile(cfg, jsonConfigFile)
}

func applyJsonFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.RecordsFile != "" {
		cfg.RecordsFile = jc.RecordsFile
	}
	if jc.UsersFile != "" {
		cfg.UsersFile = jc.UsersFile
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.SessionTokenValidity.Duration != 0 {
		cfg.SessionTokenValidityDuration = jc.SessionTokenValidity.Duration
	}
}
