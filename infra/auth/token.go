package auth

import (
	"fmt"
	"os"
	"strings"
)

// TokenProvider supplies the bearer token for Unilife API calls.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a pre-provisioned token from a file on disk.
// The platform's login tooling writes the file; unistory only reads it.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider backed by the given path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken returns the token with surrounding whitespace trimmed.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.path)
	}

	return token, nil
}
