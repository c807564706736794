package app

import (
	"context"

	appdb "github.com/xxxsen/namesplit/internal/db"
	"github.com/xxxsen/namesplit/internal/model"
	"github.com/xxxsen/namesplit/internal/nameparse"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const processPageSize = 200

// ProcessCommand parses all pending records, storing the components on
// success and the failure cause otherwise.
type ProcessCommand struct {
	limit      int
	dryRun     bool
	configPath string

	parser *nameparse.Parser
}

func (c *ProcessCommand) Name() string { return "process" }

func (c *ProcessCommand) Desc() string {
	return "解析数据库中所有待处理的姓名记录"
}

func NewProcessCommand() *ProcessCommand { return &ProcessCommand{} }

func (c *ProcessCommand) Init(f *pflag.FlagSet) {
	f.IntVar(&c.limit, "limit", 0, "本次最多处理的记录数, 0 表示不限制")
	f.BoolVar(&c.dryRun, "dry-run", false, "只解析不写回, 用于预览结果")
	f.StringVar(&c.configPath, "config", "", "配置文件路径")
}

func (c *ProcessCommand) PreRun(ctx context.Context) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if err := setupDatabase(ctx, cfg); err != nil {
		return err
	}
	c.parser = buildParser(cfg.Parser)
	return nil
}

func (c *ProcessCommand) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx)

	var lastID int64
	processed, parsed, failed := 0, 0, 0
	for {
		pageSize := processPageSize
		if c.limit > 0 && c.limit-processed < pageSize {
			pageSize = c.limit - processed
		}
		if pageSize <= 0 {
			break
		}

		records, err := appdb.NameDao.FetchPending(ctx, lastID, pageSize)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			break
		}

		for _, rec := range records {
			lastID = rec.ID
			processed++

			result, err := c.parser.Parse(rec.RawName)
			if err != nil {
				failed++
				logger.Warn("parse record failed",
					zap.Int64("id", rec.ID),
					zap.String("raw_name", rec.RawName),
					zap.Error(err),
				)
				if c.dryRun {
					continue
				}
				if err := appdb.NameDao.MarkFailed(ctx, rec.ID, err.Error()); err != nil {
					return err
				}
				continue
			}

			parsed++
			if c.dryRun {
				logger.Info("would parse record",
					zap.Int64("id", rec.ID),
					zap.String("raw_name", rec.RawName),
					zap.String("result", result.String()),
				)
				continue
			}
			update := &model.NameRecord{
				AcademicTitle:  result.AcademicTitle,
				LeadingInitial: result.LeadingInitial,
				FirstName:      result.FirstName,
				MiddleName:     result.MiddleName,
				Nickname:       result.Nickname,
				LastName:       result.LastName,
				Suffix:         result.Suffix,
				SortKey:        sortKey(result),
			}
			if err := appdb.NameDao.MarkParsed(ctx, rec.ID, update); err != nil {
				return err
			}
		}
	}

	logger.Info("process completed",
		zap.Int("processed", processed),
		zap.Int("parsed", parsed),
		zap.Int("failed", failed),
		zap.Bool("dry_run", c.dryRun),
	)
	return nil
}

func (c *ProcessCommand) PostRun(ctx context.Context) error { return nil }

func init() {
	RegisterRunner("process", func() IRunner { return NewProcessCommand() })
}
