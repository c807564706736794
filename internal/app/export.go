package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appdb "github.com/xxxsen/namesplit/internal/db"
	"github.com/xxxsen/namesplit/internal/model"
	"github.com/xxxsen/namesplit/internal/storage"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const exportPageSize = 500

// ExportCommand writes records as json to a local file, optionally uploading
// the result to object storage.
type ExportCommand struct {
	out        string
	state      string
	upload     bool
	configPath string

	cfgBucket string
}

func (c *ExportCommand) Name() string { return "export" }

func (c *ExportCommand) Desc() string {
	return "将解析结果导出为 json 文件, 可选上传到 S3"
}

func NewExportCommand() *ExportCommand { return &ExportCommand{} }

func (c *ExportCommand) Init(f *pflag.FlagSet) {
	f.StringVar(&c.out, "out", "", "导出文件路径")
	f.StringVar(&c.state, "state", model.ParseStateParsed, "导出的记录状态, 为空表示全部")
	f.BoolVar(&c.upload, "upload", false, "导出后上传到 S3")
	f.StringVar(&c.configPath, "config", "", "配置文件路径")
}

func (c *ExportCommand) PreRun(ctx context.Context) error {
	if strings.TrimSpace(c.out) == "" {
		return errors.New("export requires --out")
	}
	switch c.state {
	case "", model.ParseStatePending, model.ParseStateParsed, model.ParseStateFailed:
	default:
		return fmt.Errorf("unknown state %s", c.state)
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
	c.cfgBucket = cfg.S3.Bucket
	return nil
}

func (c *ExportCommand) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx)

	records, err := c.collectRecords(ctx)
	if err != nil {
		return err
	}
	if err := c.writeRecords(c.out, records); err != nil {
		return err
	}
	logger.Info("export written",
		zap.String("out", c.out),
		zap.Int("records", len(records)),
	)

	if !c.upload {
		return nil
	}
	store := storage.DefaultClient()
	if store == nil {
		return errors.New("upload requires config.s3 to be set")
	}
	key := filepath.Base(c.out)
	if err := store.UploadFile(ctx, key, c.out, "application/json"); err != nil {
		return err
	}
	logger.Info("export uploaded",
		zap.String("target", s3Path(c.cfgBucket, key)),
	)
	return nil
}

func (c *ExportCommand) PostRun(ctx context.Context) error { return nil }

func (c *ExportCommand) collectRecords(ctx context.Context) ([]*model.NameRecord, error) {
	var result []*model.NameRecord
	var lastID int64
	for {
		page, err := appdb.NameDao.FetchPage(ctx, lastID, exportPageSize, c.state)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		result = append(result, page...)
		lastID = page[len(page)-1].ID
	}
	return result, nil
}

func (c *ExportCommand) writeRecords(path string, records []*model.NameRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure out dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}

func init() {
	RegisterRunner("export", func() IRunner { return NewExportCommand() })
}
