package main

import (
	"github.com/alecthomas/kong"
	"github.com/fwojciec/post2txt"
)

// CLI defines the command-line interface structure for Kong.
// Every setting can also come from a POST2TXT_* environment variable or a
// YAML configuration file keyed by flag name.
type CLI struct {
	Source string `arg:"" optional:"" help:"Source HTML file. When omitted, every matching file in the current folder is processed."`
	Target string `arg:"" optional:"" help:"Target text file. Derived from the source name when omitted."`

	ConfigFile kong.ConfigFlag `name:"config" help:"Load settings from a YAML file."`

	HTMLEncoding       string   `name:"html-encoding" env:"POST2TXT_HTML_ENCODING" default:"${html_encoding}" help:"Character encoding of source files."`
	TextEncoding       string   `name:"text-encoding" env:"POST2TXT_TEXT_ENCODING" default:"${text_encoding}" help:"Character encoding of written text files."`
	QueryLanguage      string   `name:"query-language" env:"POST2TXT_QUERY_LANGUAGE" enum:"xpath,css" default:"${query_language}" help:"Language of the url and post queries (xpath, css)."`
	URLQuery           string   `name:"url-query" env:"POST2TXT_URL_QUERY" help:"Query selecting the post url anchor. Defaults to the forum permalink for the query language."`
	PostQuery          string   `name:"post-query" env:"POST2TXT_POST_QUERY" help:"Query selecting post bodies. Defaults to the forum post cell for the query language."`
	SourcePatterns     []string `name:"source-patterns" env:"POST2TXT_SOURCE_PATTERNS" sep:"," default:"${source_patterns}" help:"Glob patterns of source files scanned when no source is given."`
	RemoveFromFileName string   `name:"remove-from-file-name" env:"POST2TXT_REMOVE_FROM_FILE_NAME" default:"${remove}" help:"Text removed from source names when deriving target names."`
	TextFileExt        string   `name:"text-file-ext" env:"POST2TXT_TEXT_FILE_EXT" default:"${text_file_ext}" help:"Extension of derived target names."`
	CRLF               bool     `name:"crlf" env:"POST2TXT_CRLF" help:"Terminate lines with CR LF instead of LF."`
	TrimLines          bool     `name:"trim-lines" env:"POST2TXT_TRIM_LINES" help:"Trim rendered lines and drop those left blank."`
	Verbose            bool     `short:"v" help:"Enable debug logging."`
}

// Config resolves the parsed flags into a run configuration. Queries left
// empty take the defaults of the selected query language.
func (c *CLI) Config() post2txt.Config {
	urlQuery, postQuery := post2txt.DefaultQueries(c.QueryLanguage)
	if c.URLQuery != "" {
		urlQuery = c.URLQuery
	}
	if c.PostQuery != "" {
		postQuery = c.PostQuery
	}

	newline := post2txt.DefaultNewline
	if c.CRLF {
		newline = "\r\n"
	}

	return post2txt.Config{
		HTMLEncoding:       c.HTMLEncoding,
		TextEncoding:       c.TextEncoding,
		URLQuery:           urlQuery,
		PostQuery:          postQuery,
		QueryLanguage:      c.QueryLanguage,
		SourcePatterns:     c.SourcePatterns,
		RemoveFromFileName: c.RemoveFromFileName,
		TextFileExt:        c.TextFileExt,
		Newline:            newline,
		TrimLines:          c.TrimLines,
	}
}
