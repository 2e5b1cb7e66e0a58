package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/handiism/inventory/internal/audio"
	"github.com/handiism/inventory/internal/model"
)

// ErrUnknownFormat is returned for format names and values with no visitor.
var ErrUnknownFormat = errors.New("unknown format")

// Format identifies an output format. Each format has one visitor.
type Format int

const (
	// FormatXML renders single-line XML fragments (see XMLVisitor).
	FormatXML Format = iota

	// FormatJSON renders single-line JSON objects (see JSONVisitor).
	FormatJSON

	// FormatID3 renders binary ID3v2 tags (see audio.Tagger).
	FormatID3
)

// ParseFormat converts a format name ("xml", "json", "id3") to a Format.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	case "id3":
		return FormatID3, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ParseFormats parses a list of format names, keeping their order.
func ParseFormats(names []string) ([]Format, error) {
	formats := make([]Format, 0, len(names))
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatJSON:
		return "json"
	case FormatID3:
		return "id3"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatID3:
		return ".id3"
	default:
		return ".xml"
	}
}

// Binary reports whether the format produces non-text output that should
// not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatID3
}

// Options tunes the visitors built by NewVisitor.
type Options struct {
	// JSONStyle selects JSON separators.
	JSONStyle JSONStyle

	// JSONASCIIOnly escapes non-ASCII characters in JSON strings.
	JSONASCIIOnly bool

	// Tags configures the ID3 visitor. Nil means audio.DefaultTagConfig().
	Tags *audio.TagConfig
}

// DefaultOptions returns spaced, ASCII-only JSON and default tagging.
func DefaultOptions() Options {
	return Options{
		JSONStyle:     JSONSpaced,
		JSONASCIIOnly: true,
		Tags:          audio.DefaultTagConfig(),
	}
}

// NewVisitor returns the visitor for format f writing to w.
//
// Example:
//
//	v, err := render.NewVisitor(render.FormatXML, os.Stdout, render.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	err = book.Accept(v)
func NewVisitor(f Format, w io.Writer, opts Options) (model.Visitor, error) {
	switch f {
	case FormatXML:
		return NewXMLVisitor(w), nil
	case FormatJSON:
		return NewJSONVisitor(w, opts.JSONStyle, opts.JSONASCIIOnly), nil
	case FormatID3:
		return audio.NewTagger(w, opts.Tags), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Render visits item with the format's visitor and returns what it wrote.
func Render(item model.Inventory, f Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	v, err := NewVisitor(f, &buf, opts)
	if err != nil {
		return nil, err
	}
	if err := item.Accept(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
