package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	DBPath      string
	RedisURL    string
	Output      string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType: getEnvOrDefault("CARDTALLY_STORAGE", "sqlite"),
		DBPath:      getEnvOrDefault("CARDTALLY_DB", defaultDBPath()),
		RedisURL:    getEnvOrDefault("CARDTALLY_REDIS_URL", "redis://localhost:6379"),
		Output:      "text",
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cardtally/cardtally.db"
	}
	return filepath.Join(home, ".cardtally", "cardtally.db")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
