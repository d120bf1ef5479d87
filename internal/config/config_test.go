package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"CHOREHOUSE_ROOMS", "CHOREHOUSE_SEED", "CHOREHOUSE_DEBUG", "CHOREHOUSE_LIBRARY"} {
		t.Setenv(key, "")
	}

	config, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFiles() failed: %v", err)
	}

	if config.Generator.NumRooms != 8 {
		t.Errorf("Expected default 8 rooms, got %d", config.Generator.NumRooms)
	}
	if config.Generator.Seed != 0 {
		t.Errorf("Expected default seed 0, got %d", config.Generator.Seed)
	}
	if config.Library.DataDir != "data" {
		t.Errorf("Expected default data dir 'data', got %s", config.Library.DataDir)
	}
	if config.Logging.Debug {
		t.Error("Expected debug to be off by default")
	}
	if config.Viewer.CellSize != 48 {
		t.Errorf("Expected default cell size 48, got %d", config.Viewer.CellSize)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CHOREHOUSE_ROOMS", "5")
	t.Setenv("CHOREHOUSE_SEED", "9876543210")
	t.Setenv("CHOREHOUSE_DEBUG", "true")
	t.Setenv("CHOREHOUSE_LIBRARY", "data/house/rooms.json")
	t.Setenv("CHOREHOUSE_MAX_ATTEMPTS", "not-a-number")

	config, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFiles() failed: %v", err)
	}

	if config.Generator.NumRooms != 5 {
		t.Errorf("Expected 5 rooms, got %d", config.Generator.NumRooms)
	}
	if config.Generator.Seed != 9876543210 {
		t.Errorf("Expected seed 9876543210, got %d", config.Generator.Seed)
	}
	if !config.Logging.Debug {
		t.Error("Expected debug to be on")
	}
	if config.Library.Path != "data/house/rooms.json" {
		t.Errorf("Expected library path, got %s", config.Library.Path)
	}
	if config.Generator.MaxAttempts != 5 {
		t.Errorf("Expected invalid value to fall back to 5, got %d", config.Generator.MaxAttempts)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	// Exported but empty variables do not hide the file values
	t.Setenv("CHOREHOUSE_ROOMS", "")
	t.Setenv("CHOREHOUSE_CELL_SIZE", "")
	t.Setenv("CHOREHOUSE_MAX_ATTEMPTS", "3")

	path := filepath.Join(t.TempDir(), ".env")
	data := "CHOREHOUSE_ROOMS=6\nCHOREHOUSE_CELL_SIZE=32\nCHOREHOUSE_MAX_ATTEMPTS=9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	config, err := LoadFiles(path)
	if err != nil {
		t.Fatalf("LoadFiles() failed: %v", err)
	}
	if config.Generator.NumRooms != 6 {
		t.Errorf("Expected 6 rooms from .env, got %d", config.Generator.NumRooms)
	}
	if config.Viewer.CellSize != 32 {
		t.Errorf("Expected cell size 32 from .env, got %d", config.Viewer.CellSize)
	}
	if config.Generator.MaxAttempts != 3 {
		t.Errorf("Expected environment to win over .env with 3 attempts, got %d", config.Generator.MaxAttempts)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Generator: GeneratorConfig{NumRooms: 8, MaxAttempts: 5},
			Viewer:    ViewerConfig{CellSize: 48, WindowWidth: 640, WindowHeight: 480},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"too few rooms", func(c *Config) { c.Generator.NumRooms = 2 }, true},
		{"no attempts", func(c *Config) { c.Generator.MaxAttempts = 0 }, true},
		{"tiny cells", func(c *Config) { c.Viewer.CellSize = 4 }, true},
		{"no window", func(c *Config) { c.Viewer.WindowWidth = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
