package cfg

import (
	"os"
	"testing"
)

func loadWithArgs(t *testing.T, args ...string) (*Cfg, error) {
	t.Helper()

	original := os.Args
	os.Args = append([]string{"content-sync"}, args...)
	t.Cleanup(func() { os.Args = original })

	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWithArgs(t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected configuration")
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("Expected default DB host localhost, got %s", cfg.DBHost)
	}
	if cfg.UpstreamTimeout != 15 {
		t.Errorf("Expected default upstream timeout 15, got %d", cfg.UpstreamTimeout)
	}
	if cfg.SyncSecret != "" {
		t.Errorf("Expected empty sync secret by default, got %s", cfg.SyncSecret)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("SYNC_SECRET", "env-secret")
	t.Setenv("INSTAGRAM_ACCESS_TOKEN", "env-token")
	t.Setenv("GOOGLE_PLACES_API_KEY", "env-key")
	t.Setenv("PORT", "9090")

	cfg, err := loadWithArgs(t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.SyncSecret != "env-secret" {
		t.Errorf("Expected sync secret from environment, got %s", cfg.SyncSecret)
	}
	if cfg.InstagramAccessToken != "env-token" {
		t.Errorf("Expected Instagram token from environment, got %s", cfg.InstagramAccessToken)
	}
	if cfg.GooglePlacesAPIKey != "env-key" {
		t.Errorf("Expected Places key from environment, got %s", cfg.GooglePlacesAPIKey)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port from environment, got %s", cfg.Port)
	}
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	cfg, err := loadWithArgs(t, "--port", "3000", "--sync-secret", "flag-secret")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected port from flag, got %s", cfg.Port)
	}
	if cfg.SyncSecret != "flag-secret" {
		t.Errorf("Expected sync secret from flag, got %s", cfg.SyncSecret)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("Expected non-empty version")
	}
}
