// Package output prints command results as plain text, JSON or YAML.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrInvalidFormat = errors.New("invalid output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat accepts a format name; empty means text and "yml" means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, s)
	}
}

// Texter is implemented by results with a custom text rendering.
type Texter interface {
	Text() string
}

// Printer writes results to w in one format.
type Printer struct {
	w      io.Writer
	format Format
}

func NewPrinter(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatText
	}

	return &Printer{w: w, format: format}
}

func (p *Printer) Format() Format {
	return p.format
}

// Print writes v followed by a newline. In text mode strings, string
// slices, Texters and fmt.Stringers print as themselves and anything else
// falls back to YAML.
func (p *Printer) Print(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		return p.yaml(v)
	case FormatText:
		return p.text(v)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, p.format)
	}
}

func (p *Printer) text(v any) error {
	var s string

	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case []string:
		s = strings.Join(t, "\n")
	case Texter:
		s = t.Text()
	case fmt.Stringer:
		s = t.String()
	default:
		return p.yaml(v)
	}

	if s == "" {
		return nil
	}

	_, err := fmt.Fprintln(p.w, strings.TrimRight(s, "\n"))
	return err
}

func (p *Printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode YAML: %w", err)
	}

	return enc.Close()
}
