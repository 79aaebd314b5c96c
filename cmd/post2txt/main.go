package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/post2txt"
	"github.com/fwojciec/post2txt/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// DefaultConfigPaths are the YAML files consulted for configuration, in
// order. Missing files are skipped.
var DefaultConfigPaths = []string{
	"post2txt.yaml",
	"~/.config/post2txt/config.yaml",
}

const usage = `
Usage: post2txt [Source.html [Target.txt]]
  1. If source file name is not provided, it will try to
     process all html files under current folder.
  2. If target file name is not provided, by default it will
     be same as source file.

`

// Main represents the program.
type Main struct {
	// Dir is the folder scanned for sources and against which relative
	// paths are resolved. Empty means the process working directory.
	Dir string

	// ConfigPaths lists configuration files to load. Set before calling Run().
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: DefaultConfigPaths,
	}
}

// Run executes the CLI with the given arguments. Per-file failures are
// logged to stderr and do not produce an error; only an unusable command
// line does.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fmt.Fprint(stdout, usage)

	defaults := post2txt.DefaultConfig()
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("post2txt"),
		kong.Description("Convert saved forum thread pages to plain-text transcripts"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(yaml.Loader, m.ConfigPaths...),
		kong.Vars{
			"html_encoding":   defaults.HTMLEncoding,
			"text_encoding":   defaults.TextEncoding,
			"query_language":  defaults.QueryLanguage,
			"source_patterns": strings.Join(defaults.SourcePatterns, ","),
			"remove":          defaults.RemoveFromFileName,
			"text_file_ext":   defaults.TextFileExt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dir := m.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}

	cmd := &ConvertCmd{
		Source: cli.Source,
		Target: cli.Target,
		Dir:    dir,
		Config: cli.Config(),
	}
	return cmd.Run(ctx, logger)
}
