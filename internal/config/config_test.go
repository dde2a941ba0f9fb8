package config

import "testing"

var envNames = []string{
	"DOCSCAN_LOG_LEVEL",
	"DOCSCAN_LOW_THRESHOLD",
	"DOCSCAN_HIGH_THRESHOLD",
	"DOCSCAN_MIN_AREA",
	"DOCSCAN_MAX_DIMENSION",
	"DOCSCAN_WORKERS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range envNames {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if *cfg != *Default() {
		t.Errorf("Load() with empty environment = %+v, want %+v", cfg, Default())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LowThreshold != 75 || cfg.HighThreshold != 200 {
		t.Errorf("thresholds = %d/%d, want 75/200", cfg.LowThreshold, cfg.HighThreshold)
	}
	if cfg.MinArea != 1000 {
		t.Errorf("MinArea = %v, want 1000", cfg.MinArea)
	}
	if cfg.MaxDimension != 800 {
		t.Errorf("MaxDimension = %d, want 800", cfg.MaxDimension)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (auto)", cfg.Workers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCSCAN_LOG_LEVEL", "debug")
	t.Setenv("DOCSCAN_LOW_THRESHOLD", "50")
	t.Setenv("DOCSCAN_HIGH_THRESHOLD", "150")
	t.Setenv("DOCSCAN_MIN_AREA", "2500.5")
	t.Setenv("DOCSCAN_MAX_DIMENSION", "1024")
	t.Setenv("DOCSCAN_WORKERS", "8")

	cfg := Load()
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LowThreshold != 50 || cfg.HighThreshold != 150 {
		t.Errorf("thresholds = %d/%d, want 50/150", cfg.LowThreshold, cfg.HighThreshold)
	}
	if cfg.MinArea != 2500.5 {
		t.Errorf("MinArea = %v, want 2500.5", cfg.MinArea)
	}
	if cfg.MaxDimension != 1024 {
		t.Errorf("MaxDimension = %d, want 1024", cfg.MaxDimension)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCSCAN_LOW_THRESHOLD", "soup")
	t.Setenv("DOCSCAN_MIN_AREA", "12px")
	t.Setenv("DOCSCAN_WORKERS", "3.5")

	cfg := Load()
	if cfg.LowThreshold != 75 {
		t.Errorf("LowThreshold = %d after malformed value, want default 75", cfg.LowThreshold)
	}
	if cfg.MinArea != 1000 {
		t.Errorf("MinArea = %v after malformed value, want default 1000", cfg.MinArea)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d after malformed value, want default 0", cfg.Workers)
	}
}
