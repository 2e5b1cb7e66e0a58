package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/handiism/inventory/internal/model"
)

// XMLVisitor renders elements as single-line XML fragments.
//
// Each visit writes one line:
//
//	<book><name>Dune</name><author>Frank Herbert</author><pages>412</pages></book>
//	<audio_cd><name>Blue</name><artist>Joni Mitchell</artist><disks>1</disks></audio_cd>
//
// Child text is escaped for &, < and >. A child with empty text is written
// self-closing, e.g. <author />. No XML declaration is emitted.
type XMLVisitor struct {
	w io.Writer
}

// NewXMLVisitor creates an XMLVisitor writing to w.
func NewXMLVisitor(w io.Writer) *XMLVisitor {
	return &XMLVisitor{w: w}
}

// VisitBook writes the <book> line for b.
func (x *XMLVisitor) VisitBook(b *model.Book) error {
	line := xmlElement(model.KindBook,
		xmlChild{"name", b.Name},
		xmlChild{"author", b.Author},
		xmlChild{"pages", strconv.Itoa(b.PageCount)},
	)
	return x.write(b.Name, line)
}

// VisitAudioCD writes the <audio_cd> line for cd.
func (x *XMLVisitor) VisitAudioCD(cd *model.AudioCD) error {
	line := xmlElement(model.KindAudioCD,
		xmlChild{"name", cd.Name},
		xmlChild{"artist", cd.Artist},
		xmlChild{"disks", strconv.Itoa(cd.DiskCount)},
	)
	return x.write(cd.Name, line)
}

func (x *XMLVisitor) write(name, line string) error {
	if _, err := io.WriteString(x.w, line); err != nil {
		return fmt.Errorf("write xml for %q: %w", name, err)
	}
	return nil
}

type xmlChild struct {
	tag  string
	text string
}

// xmlElement builds <kind><c1>t1</c1>...</kind> followed by a newline.
func xmlElement(kind model.Kind, children ...xmlChild) string {
	var sb strings.Builder

	sb.WriteString("<" + string(kind) + ">")
	for _, c := range children {
		if c.text == "" {
			sb.WriteString(fmt.Sprintf("<%s />", c.tag))
			continue
		}
		sb.WriteString(fmt.Sprintf("<%s>%s</%s>", c.tag, escapeXML(c.text), c.tag))
	}
	sb.WriteString("</" + string(kind) + ">\n")

	return sb.String()
}

// escapeXML escapes characters that are special in XML text content.
//
// Replaces: & < >
// With:     &amp; &lt; &gt;
//
// Quotes are left alone; they only need escaping inside attributes.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
