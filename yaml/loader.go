// Package yaml loads CLI configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	yamlv3 "gopkg.in/yaml.v3"
)

// Ensure Loader satisfies kong.ConfigurationLoader at compile time.
var _ kong.ConfigurationLoader = Loader

// Loader reads a YAML mapping of flag names to values and resolves flags
// from it. Keys may use the flag name as is ("html-encoding") or with
// underscores ("html_encoding"). Sequences resolve to comma-separated values.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yamlv3.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml config: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := values[key]; ok {
				return normalize(v), nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func normalize(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	parts := make([]string, len(list))
	for i, item := range list {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ",")
}
