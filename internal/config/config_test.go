package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
	"db": {"driver": "postgres", "dsn": "postgres://localhost/names?sslmode=disable"},
	"s3": {"host": "minio.local:9000", "bucket": "names", "force_path_style": true},
	"parser": {"extra_suffixes": ["dds"], "optional_last_name": true}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "names", cfg.S3.Bucket)
	assert.Equal(t, []string{"dds"}, cfg.Parser.ExtraSuffixes)
	assert.True(t, cfg.Parser.OptionalLastName)
}

func TestValidateDefaults(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	assert.Equal(t, "sqlite3", cfg.DB.Driver)
	assert.Equal(t, "./namesplit.db", cfg.DB.DSN)

	bad := &Config{DB: DBConfig{Driver: "oracle"}}
	assert.Error(t, bad.Validate())
}

func TestLoadFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "real.json")
	if err := os.WriteFile(path, []byte(`{"db":{"driver":"sqlite3"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFirst(filepath.Join(dir, "missing.json"), path)
	if err != nil {
		t.Fatalf("load first: %v", err)
	}
	assert.Equal(t, "sqlite3", cfg.DB.Driver)

	_, err = LoadFirst(filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
