// Package e2e provides end-to-end tests; this file writes script files in the
// format the replay command consumes.
package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperjump/tadoru/internal/session"
)

// WriteScriptFile serializes script as indented JSON into dir and returns the
// file path.
func WriteScriptFile(dir string, script *session.Script) (string, error) {
	data, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal script: %w", err)
	}
	path := filepath.Join(dir, "script.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write script: %w", err)
	}
	return path, nil
}
