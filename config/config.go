// Package config loads server configuration from environment variables
// and .env files, and the credential table from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/warp/rent-ledger/auth"
)

// Config is the server configuration.
type Config struct {
	Port            int
	DBPath          string
	CredentialsPath string
}

// Load reads configuration from the environment. A .env file in the
// current directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := intEnv("PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	return &Config{
		Port:            port,
		DBPath:          envOrDefault("DB_PATH", "rent.db"),
		CredentialsPath: os.Getenv("CREDENTIALS_FILE"),
	}, nil
}

// LoadCredentials reads the credential table from a YAML file. An empty
// path falls back to the built-in demo credentials.
func LoadCredentials(path string) ([]auth.Credential, error) {
	if path == "" {
		return DemoCredentials(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var file struct {
		Users []auth.Credential `yaml:"users"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}
	if len(file.Users) == 0 {
		return nil, fmt.Errorf("credentials file %s lists no users", path)
	}
	return file.Users, nil
}

// DemoCredentials is the out-of-the-box credential table.
func DemoCredentials() []auth.Credential {
	return []auth.Credential{
		{Email: "collector@example.com", Password: "collector", Role: auth.RoleCollector, Name: "Field Collector"},
		{Email: "manager@example.com", Password: "manager", Role: auth.RoleManager, Name: "Portfolio Manager"},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
