package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}

	if cfg.Validate.KeyColumn != "TORICO" {
		t.Errorf("expected key column TORICO, got %q", cfg.Validate.KeyColumn)
	}
	if cfg.Validate.MaxRecipients != 5 {
		t.Errorf("expected max recipients 5, got %d", cfg.Validate.MaxRecipients)
	}
	if cfg.Validate.OutputSheet != "Filtered" {
		t.Errorf("expected output sheet Filtered, got %q", cfg.Validate.OutputSheet)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format text, got %q", cfg.Logging.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KEY_COLUMN", "TOROCO")
	t.Setenv("MAX_RECIPIENTS", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Validate.KeyColumn != "TOROCO" {
		t.Errorf("expected TOROCO, got %q", cfg.Validate.KeyColumn)
	}
	if cfg.Validate.MaxRecipients != 10 {
		t.Errorf("expected 10, got %d", cfg.Validate.MaxRecipients)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Logging.Level)
	}
}

func TestLoad_InvalidInteger(t *testing.T) {
	t.Setenv("MAX_RECIPIENTS", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for a non-integer MAX_RECIPIENTS")
	}
	if !strings.Contains(err.Error(), "MAX_RECIPIENTS") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg := &Config{}
	cfg.Validate.KeyColumn = ""
	cfg.Validate.MaxRecipients = 0
	cfg.Validate.OutputSheet = ""
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	err := cfg.validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	msg := err.Error()
	for _, want := range []string{"KEY_COLUMN", "MAX_RECIPIENTS", "OUTPUT_SHEET", "LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %s in validation error, got: %s", want, msg)
		}
	}
}

func TestValidate_NegativeMaxRecipients(t *testing.T) {
	t.Setenv("MAX_RECIPIENTS", "-1")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation to reject a negative limit")
	}
}
