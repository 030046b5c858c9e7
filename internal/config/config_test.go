package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BILIM_DB", "")
	t.Setenv("BILIM_QUESTIONS", "")
	t.Setenv("BILIM_TIMER_SECS", "")

	cfg := Load()
	if cfg.DBPath != "" {
		t.Errorf("db path = %q, want empty", cfg.DBPath)
	}
	if cfg.QuestionCount != 5 {
		t.Errorf("question count = %d, want 5", cfg.QuestionCount)
	}
	if cfg.TimerSecs != 30 {
		t.Errorf("timer = %d, want 30", cfg.TimerSecs)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BILIM_DB", "/tmp/test.db")
	t.Setenv("BILIM_QUESTIONS", "10")
	t.Setenv("BILIM_TIMER_SECS", "not-a-number")

	cfg := Load()
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.QuestionCount != 10 {
		t.Errorf("question count = %d, want 10", cfg.QuestionCount)
	}
	// Invalid values fall back to the default.
	if cfg.TimerSecs != 30 {
		t.Errorf("timer = %d, want 30", cfg.TimerSecs)
	}
}
