package post2txt

import "strings"

// Defaults tuned for Discuz! forum thread pages.
const (
	DefaultHTMLEncoding       = "GB18030"
	DefaultTextEncoding       = "GB18030"
	DefaultURLQuery           = "//a[contains(@onclick,'return copyThreadUrl')]"
	DefaultPostQuery          = "//td[@class='t_f']"
	DefaultCSSURLQuery        = `a[onclick*="return copyThreadUrl"]`
	DefaultCSSPostQuery       = `td[class="t_f"]`
	DefaultQueryLanguage      = QueryXPath
	DefaultRemoveFromFileName = " - 热门同人区 -  随缘居 -  Powered by Discuz!"
	DefaultTextFileExt        = ".txt"
	DefaultNewline            = "\n"
)

// DefaultSourcePatterns matches HTML files regardless of extension case.
var DefaultSourcePatterns = []string{"*.html", "*.htm", "*.HTML", "*.HTM"}

// Config holds the settings for one run. It is resolved once at startup.
type Config struct {
	// HTMLEncoding names the character encoding of source files.
	HTMLEncoding string

	// TextEncoding names the character encoding of written transcripts.
	TextEncoding string

	// URLQuery selects the permalink anchor. Only the first match is used.
	URLQuery string

	// PostQuery selects the post body nodes.
	PostQuery string

	// QueryLanguage is QueryXPath or QueryCSS.
	QueryLanguage string

	// SourcePatterns are the glob patterns scanned when no source is given.
	SourcePatterns []string

	// RemoveFromFileName is deleted from source names when deriving targets.
	RemoveFromFileName string

	// TextFileExt is appended to derived target names.
	TextFileExt string

	// Newline terminates every written line.
	Newline string

	// TrimLines trims rendered lines and drops those left empty. When false,
	// lines are written exactly as split, leading tabs and blank-looking
	// lines included.
	TrimLines bool
}

// DefaultQueries returns the permalink and post queries for a query
// language. Unknown languages get the XPath defaults.
func DefaultQueries(language string) (urlQuery, postQuery string) {
	if language == QueryCSS {
		return DefaultCSSURLQuery, DefaultCSSPostQuery
	}
	return DefaultURLQuery, DefaultPostQuery
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		HTMLEncoding:       DefaultHTMLEncoding,
		TextEncoding:       DefaultTextEncoding,
		URLQuery:           DefaultURLQuery,
		PostQuery:          DefaultPostQuery,
		QueryLanguage:      DefaultQueryLanguage,
		SourcePatterns:     append([]string(nil), DefaultSourcePatterns...),
		RemoveFromFileName: DefaultRemoveFromFileName,
		TextFileExt:        DefaultTextFileExt,
		Newline:            DefaultNewline,
	}
}

// Validate returns an error if the config cannot drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTMLEncoding) == "" {
		return Errorf(EINVALID, "html encoding required")
	}
	if strings.TrimSpace(c.TextEncoding) == "" {
		return Errorf(EINVALID, "text encoding required")
	}
	if strings.TrimSpace(c.PostQuery) == "" {
		return Errorf(EINVALID, "post query required")
	}
	switch c.QueryLanguage {
	case QueryXPath, QueryCSS:
	default:
		return Errorf(EINVALID, "unknown query language %q", c.QueryLanguage)
	}
	if len(c.SourcePatterns) == 0 {
		return Errorf(EINVALID, "at least one source pattern required")
	}
	if c.Newline == "" {
		return Errorf(EINVALID, "newline required")
	}
	return nil
}
