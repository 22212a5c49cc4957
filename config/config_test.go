package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a file that does not exist; defaults must still apply.
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.BaseURL != "https://sheets.googleapis.com/v4" {
		t.Fatalf("base url = %q", s.BaseURL)
	}
	if s.HTTPTimeoutSec != 30 || s.RetryMaxAttempts != 3 {
		t.Fatalf("defaults = %#v", s)
	}
	if s.RetryBaseDelayMs != 500 || s.RetryMaxDelayMs != 4000 {
		t.Fatalf("retry defaults = %#v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Settings{
		APIKey:           "abc123",
		BaseURL:          "http://127.0.0.1:9999/v4",
		HTTPTimeoutSec:   7,
		RetryMaxAttempts: 1,
		RetryBaseDelayMs: 10,
		RetryMaxDelayMs:  20,
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip = %#v, want %#v", out, in)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "api_key: from-file\nhttp_timeout_sec: 12\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.APIKey != "from-file" {
		t.Fatalf("api key = %q", s.APIKey)
	}
	if s.HTTPTimeoutSec != 12 {
		t.Fatalf("timeout = %d", s.HTTPTimeoutSec)
	}
	// Unset keys still default.
	if s.RetryMaxAttempts != 3 {
		t.Fatalf("retry attempts = %d", s.RetryMaxAttempts)
	}
}
