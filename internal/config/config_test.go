package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "notifier_test")
	os.Setenv("GEMINI_API_KEY", "test-gemini-key")
	os.Setenv("SENDGRID_API_KEY", "test-sendgrid-key")
	os.Setenv("EMAIL", "notify@example.com")
	defer func() {
		os.Unsetenv("MONGODB_URI")
		os.Unsetenv("MONGODB_DATABASE")
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("SENDGRID_API_KEY")
		os.Unsetenv("EMAIL")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.SendGrid.FromEmail == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	// defaults
	if cfg.Admin.Code != "ADMIN123" {
		t.Fatalf("expected default admin code, got %q", cfg.Admin.Code)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("expected default model, got %q", cfg.Gemini.Model)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Server.Port)
	}
}

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	os.Unsetenv("MONGODB_URI")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error when MONGODB_URI is unset")
	}
	if !strings.Contains(err.Error(), "MONGODB_URI") {
		t.Fatalf("error should name the missing variable, got %q", err)
	}
}
