package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.MigrationsPath != "./migrations" {
		t.Errorf("MigrationsPath = %q, want ./migrations", cfg.MigrationsPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/playprotect")
	t.Setenv("SES_FROM_EMAIL", "alerts@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DatabaseType != "postgres" {
		t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://localhost/playprotect" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SESFromEmail != "alerts@example.com" {
		t.Errorf("SESFromEmail = %q", cfg.SESFromEmail)
	}
}
