// Package report renders a scenario.Comparison for people (text) or tools
// (yaml).
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mcflow/scenario"
)

// ErrFormat indicates an unknown output format.
var ErrFormat = errors.New("report: unknown format")

// Format selects a renderer.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

// ParseFormat accepts "text", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// Write renders cmp in format f.
func Write(w io.Writer, f Format, cmp *scenario.Comparison) error {
	switch f {
	case Text:
		return WriteText(w, cmp)
	case YAML:
		return WriteYAML(w, cmp)
	}

	return fmt.Errorf("%w: %q", ErrFormat, f)
}
