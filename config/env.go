package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment overrides to cfg
// Unset or unparsable variables leave the value alone
func FromEnv(cfg *Config) *Config {
	if val := os.Getenv("TOURGUIDE_QUESTDB"); val != "" {
		cfg.QuestDB = val
	}
	if val := os.Getenv("TOURGUIDE_DB"); val != "" {
		cfg.Database.Path = val
	}
	if val, ok := getEnvBool("TOURGUIDE_ENRICH"); ok {
		cfg.Database.Enrich.Enabled = val
	}
	if val := os.Getenv("TOURGUIDE_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("TOURGUIDE_LOG_FILE"); val != "" {
		cfg.Log.File = val
	}
	return cfg
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}
