package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appdb "github.com/xxxsen/namesplit/internal/db"
	"github.com/xxxsen/namesplit/internal/storage"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// ImportCommand loads raw names from a local file or an s3 object into the
// staging table in pending state.
type ImportCommand struct {
	file       string
	from       string
	column     int
	configPath string
}

func (c *ImportCommand) Name() string { return "import" }

func (c *ImportCommand) Desc() string {
	return "从本地文件或 S3 对象导入原始姓名到数据库"
}

func NewImportCommand() *ImportCommand { return &ImportCommand{} }

func (c *ImportCommand) Init(f *pflag.FlagSet) {
	f.StringVar(&c.file, "file", "", "本地姓名文件路径, 支持 txt/csv")
	f.StringVar(&c.from, "from", "", "S3 对象路径, 形如 s3://bucket/key")
	f.IntVar(&c.column, "column", 0, "csv 文件中姓名所在列, 从 0 开始")
	f.StringVar(&c.configPath, "config", "", "配置文件路径")
}

func (c *ImportCommand) PreRun(ctx context.Context) error {
	if strings.TrimSpace(c.file) == "" && strings.TrimSpace(c.from) == "" {
		return errors.New("import requires --file or --from")
	}
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if err := setupDatabase(ctx, cfg); err != nil {
		return err
	}
	if err := setupStorage(ctx, cfg); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("starting import",
		zap.String("file", c.file),
		zap.String("from", c.from),
	)
	return nil
}

func (c *ImportCommand) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx)

	path := c.file
	if c.from != "" {
		local, err := c.downloadSource(ctx)
		if err != nil {
			return err
		}
		defer os.RemoveAll(filepath.Dir(local))
		path = local
	}

	names, err := readNameFile(path, c.column)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no names found in %s", path)
	}

	inserted, skipped, err := appdb.NameDao.InsertRaw(ctx, names)
	if err != nil {
		return err
	}

	logger.Info("import completed",
		zap.Int("total", len(names)),
		zap.Int("inserted", inserted),
		zap.Int("skipped", skipped),
	)
	return nil
}

func (c *ImportCommand) PostRun(ctx context.Context) error { return nil }

func (c *ImportCommand) downloadSource(ctx context.Context) (string, error) {
	store := storage.DefaultClient()
	if store == nil {
		return "", errors.New("s3 import requires config.s3 to be set")
	}
	_, key, err := parseS3Path(c.from)
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "namesplit-import-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	dest := filepath.Join(tmpDir, filepath.Base(key))
	if err := store.DownloadToFile(ctx, key, dest); err != nil {
		os.RemoveAll(tmpDir)
		return "", err
	}
	return dest, nil
}

func init() {
	RegisterRunner("import", func() IRunner { return NewImportCommand() })
}
