package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cache persists credentials between runs, keyed by username.
type Cache interface {
	Load(username string) (*Credential, error)
	Save(cred *Credential) error
}

// FileCache stores one JSON file per username under a directory.
type FileCache struct {
	dir string
}

// NewFileCache creates a cache rooted at dir. An empty dir resolves to
// ~/.otf/tokens.
func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".otf", "tokens")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create token cache dir: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

// Load returns the cached credential for username, or nil when no cache
// entry exists.
func (c *FileCache) Load(username string) (*Credential, error) {
	data, err := os.ReadFile(c.path(username))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read token cache: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		// A corrupt cache entry is equivalent to no entry.
		return nil, nil
	}
	return &cred, nil
}

// Save writes the credential for its username.
func (c *FileCache) Save(cred *Credential) error {
	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode credential: %w", err)
	}
	if err := os.WriteFile(c.path(cred.Username), data, 0o600); err != nil {
		return fmt.Errorf("cannot write token cache: %w", err)
	}
	return nil
}

func (c *FileCache) path(username string) string {
	// Usernames are email addresses; keep the filename filesystem-safe.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, username)
	return filepath.Join(c.dir, safe+".json")
}
