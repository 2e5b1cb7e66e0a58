package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/handiism/inventory/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLVisitor_Book(t *testing.T) {
	var buf bytes.Buffer
	book := model.NewBook("Design Patterns: Elements of Reusable Object-Oriented Software", "GoF", 416)

	require.NoError(t, book.Accept(NewXMLVisitor(&buf)))

	assert.Equal(t,
		"<book><name>Design Patterns: Elements of Reusable Object-Oriented Software</name><author>GoF</author><pages>416</pages></book>\n",
		buf.String())
}

func TestXMLVisitor_AudioCD(t *testing.T) {
	var buf bytes.Buffer
	cd := model.NewAudioCD("Complete Clapton", "Eric Clapton", 2)

	require.NoError(t, cd.Accept(NewXMLVisitor(&buf)))

	assert.Equal(t,
		"<audio_cd><name>Complete Clapton</name><artist>Eric Clapton</artist><disks>2</disks></audio_cd>\n",
		buf.String())
}

func TestXMLVisitor_FieldOrder(t *testing.T) {
	tests := []struct {
		name string
		item model.Inventory
		tags []string
	}{
		{"book", model.NewBook("n", "a", 1), []string{"<book>", "<name>", "<author>", "<pages>", "</book>"}},
		{"audio cd", model.NewAudioCD("n", "a", 1), []string{"<audio_cd>", "<name>", "<artist>", "<disks>", "</audio_cd>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.item.Accept(NewXMLVisitor(&buf)))

			out := buf.String()
			last := -1
			for _, tag := range tt.tags {
				idx := strings.Index(out, tag)
				require.GreaterOrEqual(t, idx, 0, "missing %s in %s", tag, out)
				assert.Greater(t, idx, last, "%s out of order in %s", tag, out)
				last = idx
			}
		})
	}
}

func TestXMLVisitor_Escape(t *testing.T) {
	var buf bytes.Buffer
	book := model.NewBook("Tom & Jerry <Special>", `Say "hi"`, 10)

	require.NoError(t, book.Accept(NewXMLVisitor(&buf)))

	out := buf.String()
	assert.Contains(t, out, "<name>Tom &amp; Jerry &lt;Special&gt;</name>")
	assert.Contains(t, out, `<author>Say "hi"</author>`)
	assert.NotContains(t, out, "<Special>")
}

func TestXMLVisitor_EmptyTextSelfCloses(t *testing.T) {
	var buf bytes.Buffer
	cd := model.NewAudioCD("Untitled", "", 0)

	require.NoError(t, cd.Accept(NewXMLVisitor(&buf)))

	assert.Equal(t, "<audio_cd><name>Untitled</name><artist /><disks>0</disks></audio_cd>\n", buf.String())
}

func TestXMLVisitor_OneLinePerVisit(t *testing.T) {
	var buf bytes.Buffer
	v := NewXMLVisitor(&buf)
	book := model.NewBook("Dune", "Frank Herbert", 412)

	require.NoError(t, book.Accept(v))
	require.NoError(t, book.Accept(v))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])
}

func TestXMLVisitor_WriteError(t *testing.T) {
	err := model.NewBook("Dune", "Frank Herbert", 412).Accept(NewXMLVisitor(failingWriter{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
	assert.Contains(t, err.Error(), `"Dune"`)
}

var errWrite = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}
