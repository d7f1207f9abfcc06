package config

import (
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"
)

func TestNormalizeDatabaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"postgres://u:p@host:5432/db", "postgresql://u:p@host:5432/db"},
		{"postgresql://u:p@host/db", "postgresql://u:p@host/db"},
		{"host=localhost user=x", "host=localhost user=x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDatabaseURL(tt.in))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://a:b@db/x")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	assert.Equal(t, "postgresql://a:b@db/x", cfg.DB.URL)
	assert.Equal(t, 7, cfg.Session.LifetimeDays)
	assert.Equal(t, 64, len(cfg.Session.Secret))
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("SESSION_LIFETIME_DAYS", "seven")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-integer SESSION_LIFETIME_DAYS")
	}
}

func TestLoadConfigRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECRET_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when SECRET_KEY is missing in production")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger("development", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestConnectDBFallsBackToSQLite(t *testing.T) {
	cfg := Config{}
	cfg.App.Env = "test"
	cfg.DB.SQLitePath = filepath.Join(t.TempDir(), "baskettime.db")

	db, err := ConnectDB(cfg)
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	assert.Equal(t, "sqlite", db.Dialector.Name())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Equal(t, nil, sqlDB.Ping())
}
