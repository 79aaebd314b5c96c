package extract

import (
	"context"
	"fmt"

	"github.com/fwojciec/post2txt"
)

// Processor converts source files into transcript files.
type Processor struct {
	Sources   post2txt.SourceOpener
	Parser    post2txt.Parser
	Extractor *Extractor
	Store     post2txt.TranscriptStore
}

// ProcessFile reads source, extracts its transcript and saves it to target.
// The target is written only after the source has been parsed, so a source
// that cannot be read leaves no output behind.
func (p *Processor) ProcessFile(ctx context.Context, source, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rc, err := p.Sources.Open(source)
	if err != nil {
		return err
	}
	defer rc.Close()

	page, err := p.Parser.Parse(rc)
	if err != nil {
		return fmt.Errorf("parse %s: %w", source, err)
	}

	t := p.Extractor.Extract(page)

	if err := p.Store.Save(ctx, target, t); err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}
	return nil
}
