package mock

import "github.com/fwojciec/post2txt"

var _ post2txt.Converter = (*Converter)(nil)

// Converter is a mock implementation of post2txt.Converter.
type Converter struct {
	ConvertFn func(n post2txt.Node) []string
}

func (c *Converter) Convert(n post2txt.Node) []string {
	return c.ConvertFn(n)
}
