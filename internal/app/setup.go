package app

import (
	"context"
	"errors"
	"os"

	"github.com/xxxsen/namesplit/internal/config"
	appdb "github.com/xxxsen/namesplit/internal/db"
	"github.com/xxxsen/namesplit/internal/nameparse"
	"github.com/xxxsen/namesplit/internal/storage"
)

var defaultConfigPaths = []string{
	"./namesplit.json",
	"/etc/namesplit.json",
}

// loadConfig reads the config from the explicit path or the default
// locations. When nothing was requested explicitly and no default file
// exists, the built-in defaults apply.
func loadConfig(explicit string) (*config.Config, error) {
	paths := append([]string{explicit}, defaultConfigPaths...)
	cfg, err := config.LoadFirst(paths...)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// setupDatabase opens the configured backend, ensures the staging table
// exists and publishes the handle as the package-wide default.
func setupDatabase(ctx context.Context, cfg *config.Config) error {
	handle, err := appdb.Open(cfg.DB)
	if err != nil {
		return err
	}
	if err := appdb.EnsureSchema(ctx, handle, cfg.DB.Driver); err != nil {
		handle.Close()
		return err
	}
	appdb.SetDefault(handle, cfg.DB.Driver)
	return nil
}

// setupStorage builds the S3 client when the config carries one. Commands
// that never touch object storage run fine without it.
func setupStorage(ctx context.Context, cfg *config.Config) error {
	if cfg.S3.Host == "" && cfg.S3.Bucket == "" {
		return nil
	}
	client, err := storage.NewS3Client(ctx, cfg.S3)
	if err != nil {
		return err
	}
	storage.SetDefaultClient(client)
	return nil
}

// buildParser combines the stock word lists with the config's extra entries.
func buildParser(cfg config.ParserConfig) *nameparse.Parser {
	pcfg := nameparse.DefaultConfig()
	pcfg.Suffixes = append(pcfg.Suffixes, cfg.ExtraSuffixes...)
	pcfg.Prefixes = append(pcfg.Prefixes, cfg.ExtraPrefixes...)
	pcfg.AcademicTitles = append(pcfg.AcademicTitles, cfg.ExtraTitles...)
	pcfg.OptionalFirstName = cfg.OptionalFirstName
	pcfg.OptionalLastName = cfg.OptionalLastName
	return nameparse.New(pcfg)
}
