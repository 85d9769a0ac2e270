// Package store persists the client-side state the browser kept in
// localStorage: the session and the booking draft. Files live under a single
// sharthi home directory; reads and writes are synchronous and uncoordinated
// because the client is effectively single-tabbed in intended use.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sharthi/entity"
)

// DefaultDir resolves the sharthi home directory. SHARTHI_HOME wins,
// otherwise a "sharthi" directory under the user config dir is used.
func DefaultDir() (string, error) {
	if dir := os.Getenv("SHARTHI_HOME"); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve user config dir: %w", err)
	}

	return filepath.Join(base, "sharthi"), nil
}

func readJSON(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.ErrNotFound
		}
		return fmt.Errorf("could not read %s: %w", filepath.Base(path), err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("could not decode %s: %w", filepath.Base(path), err)
	}

	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create state dir: %w", err)
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("could not write %s: %w", filepath.Base(path), err)
	}

	return nil
}

func removeFile(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove %s: %w", filepath.Base(path), err)
	}
	return nil
}
