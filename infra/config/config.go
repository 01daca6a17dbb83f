package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application-level configuration.
type Config struct {
	APIBaseURL   string // e.g. "https://api.unilife.app"
	TokenPath    string // Path to file containing the access token
	DebugLogPath string // Empty disables the debug log
}

// Load reads configuration from environment variables. main calls
// godotenv.Load first, so a local .env file feeds the same variables.
//
//	UNISTORY_API    Unilife API base URL (required, https only)
//	UNISTORY_TOKEN  Path to token file (default: ~/.config/unistory/token)
//	UNISTORY_DEBUG  Path to a debug log file (default: disabled)
func Load() (Config, error) {
	base := strings.TrimSpace(os.Getenv("UNISTORY_API"))
	if base == "" {
		return Config{}, fmt.Errorf("UNISTORY_API is not set")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid UNISTORY_API: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid UNISTORY_API: only https is allowed")
	}
	base = strings.TrimRight(parsed.String(), "/")

	tokenPath := os.Getenv("UNISTORY_TOKEN")
	if tokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		tokenPath = filepath.Join(home, ".config", "unistory", "token")
	}

	return Config{
		APIBaseURL:   base,
		TokenPath:    tokenPath,
		DebugLogPath: os.Getenv("UNISTORY_DEBUG"),
	}, nil
}
