package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config describes the application level configuration loaded from json.
type Config struct {
	DB     DBConfig     `json:"db"`
	S3     S3Config     `json:"s3"`
	Parser ParserConfig `json:"parser"`
}

// DBConfig selects the SQL backend the staging table lives in.
type DBConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// S3Config holds the options for accessing the object store. Optional; the
// import/export commands only need it when reading from or uploading to S3.
type S3Config struct {
	Host            string `json:"host"`
	Bucket          string `json:"bucket"`
	Region          string `json:"region"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token"`
	ForcePathStyle  bool   `json:"force_path_style"`
}

// ParserConfig extends the built-in word lists and relaxes the mandatory
// fields. Extra entries are appended to the defaults, not replacing them.
type ParserConfig struct {
	ExtraSuffixes     []string `json:"extra_suffixes"`
	ExtraPrefixes     []string `json:"extra_prefixes"`
	ExtraTitles       []string `json:"extra_titles"`
	OptionalFirstName bool     `json:"optional_first_name"`
	OptionalLastName  bool     `json:"optional_last_name"`
}

// LoadFirst tries to load configuration from the given paths, returning the
// first successfully decoded configuration. If none of the paths contain a
// readable config, an error is returned.
func LoadFirst(paths ...string) (*Config, error) {
	var lastErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		cfg, err := Load(path)
		if errors.Is(err, os.ErrNotExist) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("config not found in paths: %v", paths)
	}
	return nil, lastErr
}

// Load reads configuration from a single json file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fills in database defaults and rejects unknown drivers.
func (c *Config) Validate() error {
	if c.DB.Driver == "" {
		c.DB.Driver = "sqlite3"
	}
	if c.DB.DSN == "" {
		c.DB.DSN = "./namesplit.db"
	}
	switch c.DB.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("config.db.driver %s not supported", c.DB.Driver)
	}
	return nil
}

// Default returns a usable configuration without reading any file.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}
