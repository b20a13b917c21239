package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "LATE_GRACE_MINUTES", "SCAN_INFERENCE", "SCAN_LOCK_TIMEOUT", "CSV_DELIMITER", "TOKEN_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Scan.GraceMinutes != 0 {
		t.Fatalf("expected zero grace by default, got %d", cfg.Scan.GraceMinutes)
	}
	if cfg.Report.Delimiter != ',' {
		t.Fatalf("expected comma delimiter, got %q", cfg.Report.Delimiter)
	}
	if cfg.Scan.LockTimeout != 3*time.Second || cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected durations %v %v", cfg.Scan.LockTimeout, cfg.Auth.TokenTTL)
	}
	if cfg.Location == nil {
		t.Fatalf("expected a location")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("LATE_GRACE_MINUTES", "10")
	t.Setenv("SCAN_INFERENCE", "LAST")
	t.Setenv("SCAN_LOCK_TIMEOUT", "500ms")
	t.Setenv("CSV_DELIMITER", ";")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()
	if cfg.Database.Driver != "postgres" || cfg.Scan.Inference != "last" {
		t.Fatalf("expected lower-cased driver and mode, got %q %q", cfg.Database.Driver, cfg.Scan.Inference)
	}
	if cfg.Scan.GraceMinutes != 10 || cfg.Scan.LockTimeout != 500*time.Millisecond {
		t.Fatalf("unexpected scan config %+v", cfg.Scan)
	}
	if cfg.Report.Delimiter != ';' || cfg.Location != time.UTC {
		t.Fatalf("unexpected delimiter %q or location %v", cfg.Report.Delimiter, cfg.Location)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "nope")
	t.Setenv("X_BOOL", "true")
	if GetEnvAsInt("X_INT", 7) != 7 {
		t.Fatalf("invalid int should fall back")
	}
	if !GetEnvAsBool("X_BOOL", false) {
		t.Fatalf("expected true")
	}
	if GetEnv("X_MISSING_FOR_SURE", "fb") != "fb" {
		t.Fatalf("expected fallback")
	}
}
