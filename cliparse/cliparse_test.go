// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("VOTING_DEADLINE_DAY", "thursday")
	os.Setenv("VOTING_DEADLINE_HOUR", "12")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected database type postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DeadlineWeekday != time.Thursday || cfg.DeadlineHour != 12 {
		t.Errorf("expected Thursday 12:00 deadline, got %s %d:00", cfg.DeadlineWeekday, cfg.DeadlineHour)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite || cfg.DatabaseURL != "lunch-vote.db" {
		t.Errorf("expected sqlite at lunch-vote.db, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.DeadlineWeekday != time.Friday || cfg.DeadlineHour != 15 {
		t.Errorf("expected Friday 15:00 deadline, got %s %d:00", cfg.DeadlineWeekday, cfg.DeadlineHour)
	}
	if cfg.Location != time.Local {
		t.Errorf("expected local time zone, got %v", cfg.Location)
	}
	if cfg.RateLimit != 10 || cfg.RateBurst != 20 {
		t.Errorf("expected rate 10/20, got %v/%d", cfg.RateLimit, cfg.RateBurst)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown database type", []string{"-t", "mongo"}},
		{"postgres without url", []string{"-t", "postgres"}},
		{"bad timezone", []string{"-tz", "Mars/Olympus"}},
		{"bad weekday", []string{"-deadline-day", "someday"}},
		{"hour out of range", []string{"-deadline-hour", "24"}},
		{"negative burst", []string{"-rate", "5", "-burst", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			if _, err := ParseFlags(tt.args); err == nil {
				t.Errorf("ParseFlags(%v) expected error", tt.args)
			}
		})
	}
}

func TestParseFlags_Burst(t *testing.T) {
	os.Clearenv()
	os.Setenv("RATE_BURST", "0")
	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for RATE_BURST=0 with rate limiting on")
	}

	// burst is irrelevant once rate limiting is off
	os.Clearenv()
	cfg, err := ParseFlags([]string{"-rate", "0", "-burst", "-1"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.RateLimit != 0 {
		t.Errorf("Expected rate limiting disabled, got %v", cfg.RateLimit)
	}
}
