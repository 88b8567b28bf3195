package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the binary needs from the environment. An empty
// GoogleClientID disables sign-in only; the rest of the app keeps working.
type Config struct {
	ListenAddr     string `yaml:"listen_addr"`
	BackendBaseURL string `yaml:"backend_base_url"`
	GoogleClientID string `yaml:"google_client_id"`
	StaticDir      string `yaml:"static_dir"`
	TokenFile      string `yaml:"token_file"`
}

func Default() Config {
	return Config{
		ListenAddr:     ":3000",
		BackendBaseURL: "http://localhost:8000",
		StaticDir:      "web/public",
		TokenFile:      ".bakehouse_token",
	}
}

// Load reads the optional YAML file at path, then applies env overrides.
// A missing file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return cfg, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.ListenAddr = ":" + v
	}
	if v := os.Getenv("BAKERY_API_BASE_URL"); v != "" {
		cfg.BackendBaseURL = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.GoogleClientID = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}

	return cfg, nil
}
