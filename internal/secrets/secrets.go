// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files. Each
// file is one secret: the filename is the key name, the trimmed contents the
// value.
//
// The only key file keyword-trends looks up is semantic-scholar-api-key, but
// Load returns whatever the directory holds.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SemanticScholarKey is the key file name holding the Semantic Scholar API key.
const SemanticScholarKey = "semantic-scholar-api-key"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}

	return secrets, nil
}

// Key returns the named secret from a loaded map, or fallback when fallback
// is non-empty. An explicit value (a flag) always wins over the key file.
func Key(loaded map[string]string, name, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loaded[name]
}
