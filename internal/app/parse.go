package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xxxsen/namesplit/internal/nameparse"
	"github.com/xxxsen/namesplit/internal/translit"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// ParseCommand splits a single name from the command line and prints the
// components as json. No database involved.
type ParseCommand struct {
	name       string
	romanize   bool
	configPath string

	parser *nameparse.Parser
}

func (c *ParseCommand) Name() string { return "parse" }

func (c *ParseCommand) Desc() string {
	return "解析单个姓名字符串并输出各组成部分"
}

func NewParseCommand() *ParseCommand { return &ParseCommand{} }

func (c *ParseCommand) Init(f *pflag.FlagSet) {
	f.StringVar(&c.name, "name", "", "待解析的姓名字符串")
	f.BoolVar(&c.romanize, "romanize", false, "将汉字转换为拼音后一并输出")
	f.StringVar(&c.configPath, "config", "", "配置文件路径")
}

func (c *ParseCommand) PreRun(ctx context.Context) error {
	if strings.TrimSpace(c.name) == "" {
		return errors.New("parse requires --name")
	}
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.parser = buildParser(cfg.Parser)
	return nil
}

type parseOutput struct {
	nameparse.Name
	Romanized string `json:"romanized,omitempty"`
}

func (c *ParseCommand) Run(ctx context.Context) error {
	result, err := c.parser.Parse(c.name)
	if err != nil {
		logutil.GetLogger(ctx).Error("parse name failed",
			zap.String("name", c.name),
			zap.Error(err),
		)
		return err
	}

	out := parseOutput{Name: *result}
	if c.romanize && translit.HasHan(c.name) {
		out.Romanized = translit.Romanize(result.String())
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func (c *ParseCommand) PostRun(ctx context.Context) error { return nil }

func init() {
	RegisterRunner("parse", func() IRunner { return NewParseCommand() })
}
