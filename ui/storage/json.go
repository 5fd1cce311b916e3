package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// appDirName is the per-user directory holding config.json
const appDirName = "vitalink"

// GetConfigPath returns the path to config.json inside the user config dir
func GetConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, "config.json"), nil
}

// GetScreenshotDir returns the directory screenshots are saved into
func GetScreenshotDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, "screenshots"), nil
}

// EnsureDirectories creates the application config directory if missing
func EnsureDirectories() error {
	base, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return os.MkdirAll(filepath.Join(base, appDirName), 0o755)
}

// ReadJSON reads and unmarshals a JSON file into v
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// AtomicWriteJSON marshals v and writes it to path via a temp file rename,
// so a crash mid-write never leaves a truncated config behind.
func AtomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
