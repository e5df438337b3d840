package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty", cfg.Database.URL)
	}
	if cfg.Report.DefaultMonths != 12 {
		t.Errorf("Report.DefaultMonths = %d, want 12", cfg.Report.DefaultMonths)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Database.URL = "postgres://localhost/expenses"
	cfg.Report.DefaultMonths = 6

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Database.URL != cfg.Database.URL {
		t.Errorf("Database.URL = %q, want %q", got.Database.URL, cfg.Database.URL)
	}
	if got.Report.DefaultMonths != 6 {
		t.Errorf("Report.DefaultMonths = %d, want 6", got.Report.DefaultMonths)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "expense-tracker", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("database = {{"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() on malformed file expected error")
	}
}

func TestDatabaseURLPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg := DefaultConfig()

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("EXPENSE_DB", "postgres://env/expenses")
		cfg.Database.URL = "postgres://file/expenses"

		url, source := DatabaseURL(cfg)
		if url != "postgres://env/expenses" || source != "environment" {
			t.Errorf("got (%q, %q), want environment override", url, source)
		}
	})

	t.Run("config file next", func(t *testing.T) {
		t.Setenv("EXPENSE_DB", "")
		cfg.Database.URL = "postgres://file/expenses"

		url, source := DatabaseURL(cfg)
		if url != "postgres://file/expenses" || source != "config file" {
			t.Errorf("got (%q, %q), want config file value", url, source)
		}
	})

	t.Run("default last", func(t *testing.T) {
		t.Setenv("EXPENSE_DB", "")
		cfg.Database.URL = ""

		url, source := DatabaseURL(cfg)
		want := filepath.Join("/data", "expense-tracker", "expenses.db")
		if url != want || source != "default" {
			t.Errorf("got (%q, %q), want (%q, default)", url, source, want)
		}
	})
}

func TestConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom")

	want := filepath.Join("/custom", "expense-tracker", "config.toml")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}
