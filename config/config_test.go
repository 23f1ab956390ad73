package config

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })
	return dir
}

func TestSaveLoadRoundtrip(t *testing.T) {
	useTempDir(t)

	cfg := DefaultConfig()
	cfg.Demo.CustomerID = "CUST-67890"
	cfg.Demo.HistoryDays = 30
	simulate := false
	cfg.Demo.Simulate = &simulate

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Demo.CustomerID != "CUST-67890" {
		t.Fatalf("CustomerID = %q", loaded.Demo.CustomerID)
	}
	if loaded.Demo.HistoryDays != 30 {
		t.Fatalf("HistoryDays = %d", loaded.Demo.HistoryDays)
	}
	if loaded.Demo.SimulateEnabled() {
		t.Fatal("Simulate = false should survive the roundtrip")
	}
	if len(loaded.Demo.Supervisors) != 3 {
		t.Fatalf("Supervisors = %d entries", len(loaded.Demo.Supervisors))
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := useTempDir(t)

	partial := "demo:\n  customerId: CUST-11111\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Demo.CustomerID != "CUST-11111" {
		t.Fatalf("CustomerID = %q, explicit value lost", cfg.Demo.CustomerID)
	}
	if cfg.Demo.HistoryDays != defaultHistoryDays {
		t.Fatalf("HistoryDays = %d, want default", cfg.Demo.HistoryDays)
	}
	if cfg.Demo.Issue != defaultIssue {
		t.Fatalf("Issue = %q, want default", cfg.Demo.Issue)
	}
	if !cfg.Demo.SimulateEnabled() {
		t.Fatal("Simulate should default to on")
	}
	if cfg.Assist.SuggestDelayMS != defaultSuggestDelayMS {
		t.Fatalf("SuggestDelayMS = %d, want default", cfg.Assist.SuggestDelayMS)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	useTempDir(t)
	if _, err := Load(); err == nil {
		t.Fatal("Load() without a config file should fail")
	}
}

func TestSimulateEnabled(t *testing.T) {
	var d DemoConfig
	if !d.SimulateEnabled() {
		t.Fatal("nil Simulate should mean enabled")
	}
	on, off := true, false
	d.Simulate = &on
	if !d.SimulateEnabled() {
		t.Fatal("explicit true should mean enabled")
	}
	d.Simulate = &off
	if d.SimulateEnabled() {
		t.Fatal("explicit false should mean disabled")
	}
}
