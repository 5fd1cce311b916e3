package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != 1 {
		t.Errorf("expected version 1, got %d", config.Version)
	}
	if config.KeepNavPinned {
		t.Error("expected keepNavPinned to default to false")
	}
	if !config.AutoDiscovery {
		t.Error("expected autoDiscovery to default to true")
	}
	if len(config.Controller.FrontGrid) != FrontGridRows*FrontGridCols {
		t.Errorf("expected %d front grid slots, got %d",
			FrontGridRows*FrontGridCols, len(config.Controller.FrontGrid))
	}
	if len(config.Hosts) != 0 {
		t.Errorf("expected no hosts, got %d", len(config.Hosts))
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.json")

	data := struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}{
		Name:  "test",
		Value: 42,
	}

	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}

	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	if err := ReadJSON(path, &result); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if result.Name != data.Name || result.Value != data.Value {
		t.Errorf("data mismatch: expected %+v, got %+v", data, result)
	}

	// Verify temp file is cleaned up
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after atomic write")
	}
}

func TestMigrateConfig(t *testing.T) {
	tests := []struct {
		name  string
		in    *Config
		check func(t *testing.T, got *Config)
	}{
		{
			name: "zero version bumped",
			in:   &Config{},
			check: func(t *testing.T, got *Config) {
				if got.Version != 1 {
					t.Errorf("expected version 1, got %d", got.Version)
				}
			},
		},
		{
			name: "missing map id defaulted",
			in:   &Config{Version: 1},
			check: func(t *testing.T, got *Config) {
				if got.Controller.MapID != "default" {
					t.Errorf("expected default map id, got %q", got.Controller.MapID)
				}
			},
		},
		{
			name: "wrong grid length rebuilt",
			in: &Config{
				Version:    1,
				Controller: ControllerMap{MapID: "custom1", FrontGrid: make([]string, 3)},
			},
			check: func(t *testing.T, got *Config) {
				if len(got.Controller.FrontGrid) != FrontGridRows*FrontGridCols {
					t.Errorf("expected %d slots, got %d",
						FrontGridRows*FrontGridCols, len(got.Controller.FrontGrid))
				}
			},
		},
		{
			name: "nil hosts replaced",
			in:   &Config{Version: 1},
			check: func(t *testing.T, got *Config) {
				if got.Hosts == nil {
					t.Error("expected non-nil hosts slice")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, migrateConfig(tc.in))
		})
	}
}
