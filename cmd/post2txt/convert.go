package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/post2txt"
	"github.com/fwojciec/post2txt/charset"
	"github.com/fwojciec/post2txt/extract"
	"github.com/fwojciec/post2txt/fs"
	"github.com/fwojciec/post2txt/goquery"
	"github.com/fwojciec/post2txt/htmlquery"
	"github.com/fwojciec/post2txt/plaintext"
	p2tslog "github.com/fwojciec/post2txt/slog"
)

// ConvertCmd converts one source file, or every source file in Dir.
type ConvertCmd struct {
	Source string
	Target string
	Dir    string
	Config post2txt.Config
}

// Run executes the conversion. Configuration problems, a missing source and
// failures of individual files are logged and end or skip work without
// returning an error.
func (c *ConvertCmd) Run(ctx context.Context, logger *slog.Logger) error {
	cfg := c.Config
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", post2txt.ErrorMessage(err))
		return nil
	}

	encHTML, err := charset.Lookup(cfg.HTMLEncoding)
	if err != nil {
		logger.Error("error when reading encoding from config", "setting", "html-encoding", "err", post2txt.ErrorMessage(err))
		return nil
	}
	encText, err := charset.Lookup(cfg.TextEncoding)
	if err != nil {
		logger.Error("error when reading encoding from config", "setting", "text-encoding", "err", post2txt.ErrorMessage(err))
		return nil
	}
	logger.Info("input html file encoding", "encoding", charset.Name(encHTML))
	logger.Info("output text file encoding", "encoding", charset.Name(encText))
	logger.Info("url node query", "query", cfg.URLQuery)
	logger.Info("post node query", "query", cfg.PostQuery)

	proc := &extract.Processor{
		Sources: fs.NewSourceOpener(encHTML),
		Parser:  p2tslog.NewLoggingParser(newParser(cfg.QueryLanguage), logger),
		Extractor: &extract.Extractor{
			URLQuery:  cfg.URLQuery,
			PostQuery: cfg.PostQuery,
			Converter: plaintext.NewConverter(cfg.TrimLines),
			Logger:    logger,
		},
		Store: p2tslog.NewLoggingStore(fs.NewFileStore(encText, cfg.Newline), logger),
	}

	if c.Source != "" {
		source := c.resolve(c.Source)
		if !fs.IsFile(source) {
			logger.Error("source file doesn't exist", "source", source)
			return nil
		}
		logger.Info("source file", "source", source)

		target := c.resolve(fs.OutputName(source, cfg.RemoveFromFileName, cfg.TextFileExt))
		if c.Target != "" {
			target = c.resolve(c.Target)
		}
		logger.Info("target file", "target", target)

		c.process(ctx, logger, proc, source, target)
		return nil
	}

	logger.Info("looking for source files under current folder", "patterns", cfg.SourcePatterns, "dir", c.Dir)
	files, err := fs.FindSources(c.Dir, cfg.SourcePatterns)
	if err != nil {
		logger.Error("failed to scan current folder", "dir", c.Dir, "err", err)
		return nil
	}
	if len(files) == 0 {
		logger.Info("no files found under current folder with specified patterns", "patterns", cfg.SourcePatterns)
		return nil
	}
	logger.Info("source files found", "count", len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := c.resolve(fs.OutputName(file, cfg.RemoveFromFileName, cfg.TextFileExt))
		logger.Info("extracting text file from html post", "source", file, "target", target)
		c.process(ctx, logger, proc, file, target)
	}
	return nil
}

func (c *ConvertCmd) process(ctx context.Context, logger *slog.Logger, proc *extract.Processor, source, target string) {
	if err := proc.ProcessFile(ctx, source, target); err != nil {
		logger.Error("failed to convert file", "source", source, "target", target, "err", err)
	}
}

// resolve makes relative paths relative to Dir.
func (c *ConvertCmd) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

func newParser(language string) post2txt.Parser {
	if language == post2txt.QueryCSS {
		return goquery.NewParser()
	}
	return htmlquery.NewParser()
}
