package render

import (
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/francoispqt/gojay"
	"github.com/handiism/inventory/internal/model"
)

// JSONStyle selects the separators used between JSON tokens.
type JSONStyle int

const (
	// JSONSpaced puts a space after every ',' and ':' outside strings:
	//	{"book": {"name": "Dune", "author": "Frank Herbert", "pages": 412}}
	JSONSpaced JSONStyle = iota

	// JSONCompact writes no whitespace at all:
	//	{"book":{"name":"Dune","author":"Frank Herbert","pages":412}}
	JSONCompact
)

// JSONVisitor renders elements as one JSON object per line.
//
// The object has a single key naming the element kind, holding the fields in
// a fixed order:
//
//	{"book": {"name": ..., "author": ..., "pages": ...}}
//	{"audio_cd": {"name": ..., "artist": ..., "disks": ...}}
//
// With asciiOnly set, every non-ASCII character inside strings is written as
// a \uXXXX escape (surrogate pairs above the BMP).
type JSONVisitor struct {
	w         io.Writer
	style     JSONStyle
	asciiOnly bool
}

// NewJSONVisitor creates a JSONVisitor writing to w.
func NewJSONVisitor(w io.Writer, style JSONStyle, asciiOnly bool) *JSONVisitor {
	return &JSONVisitor{
		w:         w,
		style:     style,
		asciiOnly: asciiOnly,
	}
}

// VisitBook writes the {"book": ...} line for b.
func (j *JSONVisitor) VisitBook(b *model.Book) error {
	return j.encode(b.Name, envelope{kind: model.KindBook, body: bookObject{b}})
}

// VisitAudioCD writes the {"audio_cd": ...} line for cd.
func (j *JSONVisitor) VisitAudioCD(cd *model.AudioCD) error {
	return j.encode(cd.Name, envelope{kind: model.KindAudioCD, body: audioCDObject{cd}})
}

func (j *JSONVisitor) encode(name string, obj envelope) error {
	data, err := gojay.MarshalJSONObject(obj)
	if err != nil {
		return fmt.Errorf("encode json for %q: %w", name, err)
	}

	line := reformat(data, j.style, j.asciiOnly)
	line = append(line, '\n')

	if _, err := j.w.Write(line); err != nil {
		return fmt.Errorf("write json for %q: %w", name, err)
	}
	return nil
}

// envelope wraps an element object under its kind key.
type envelope struct {
	kind model.Kind
	body gojay.MarshalerJSONObject
}

func (e envelope) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey(string(e.kind), e.body)
}

func (e envelope) IsNil() bool {
	return e.body == nil
}

type bookObject struct {
	*model.Book
}

func (o bookObject) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", o.Name)
	enc.StringKey("author", o.Author)
	enc.IntKey("pages", o.PageCount)
}

func (o bookObject) IsNil() bool {
	return o.Book == nil
}

type audioCDObject struct {
	*model.AudioCD
}

func (o audioCDObject) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", o.Name)
	enc.StringKey("artist", o.Artist)
	enc.IntKey("disks", o.DiskCount)
}

func (o audioCDObject) IsNil() bool {
	return o.AudioCD == nil
}

// reformat rewrites compact encoder output into the requested style.
//
// Outside strings, ',' and ':' get a trailing space in JSONSpaced style.
// Inside strings, raw control bytes become \u00XX and, with asciiOnly,
// multi-byte runes become \uXXXX escapes. Existing escape sequences are
// copied through unchanged.
func reformat(data []byte, style JSONStyle, asciiOnly bool) []byte {
	out := make([]byte, 0, len(data)+len(data)/8)
	inString, escaped := false, false

	for i := 0; i < len(data); {
		c := data[i]

		if !inString {
			out = append(out, c)
			switch {
			case c == '"':
				inString = true
			case style == JSONSpaced && (c == ',' || c == ':'):
				out = append(out, ' ')
			}
			i++
			continue
		}

		switch {
		case escaped:
			escaped = false
			out = append(out, c)
		case c == '\\':
			escaped = true
			out = append(out, c)
		case c == '"':
			inString = false
			out = append(out, c)
		case c < 0x20:
			out = fmt.Appendf(out, `\u%04x`, c)
		case c >= utf8.RuneSelf && asciiOnly:
			r, size := utf8.DecodeRune(data[i:])
			out = appendRuneEscape(out, r)
			i += size
			continue
		default:
			out = append(out, c)
		}
		i++
	}

	return out
}

func appendRuneEscape(out []byte, r rune) []byte {
	if r > 0xffff {
		r1, r2 := utf16.EncodeRune(r)
		return fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
	}
	return fmt.Appendf(out, `\u%04x`, r)
}
