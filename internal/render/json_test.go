package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/handiism/inventory/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONVisitor_SampleLines(t *testing.T) {
	var buf bytes.Buffer
	v := NewJSONVisitor(&buf, JSONSpaced, true)

	require.NoError(t, model.SampleCatalog().Accept(v))

	assert.Equal(t,
		`{"book": {"name": "Design Patterns: Elements of Reusable Object-Oriented Software", "author": "GoF", "pages": 416}}`+"\n"+
			`{"audio_cd": {"name": "Complete Clapton", "artist": "Eric Clapton", "disks": 2}}`+"\n",
		buf.String())
}

func TestJSONVisitor_Compact(t *testing.T) {
	var buf bytes.Buffer
	book := model.NewBook("Dune", "Frank Herbert", 412)

	require.NoError(t, book.Accept(NewJSONVisitor(&buf, JSONCompact, true)))

	assert.Equal(t, `{"book":{"name":"Dune","author":"Frank Herbert","pages":412}}`+"\n", buf.String())
}

func TestJSONVisitor_Decodes(t *testing.T) {
	tests := []struct {
		name string
		item model.Inventory
		want map[string]map[string]any
	}{
		{
			name: "book",
			item: model.NewBook(`Quotes "and" \slashes\, colons: commas,`, "Ann, Bob", 0),
			want: map[string]map[string]any{
				"book": {"name": `Quotes "and" \slashes\, colons: commas,`, "author": "Ann, Bob", "pages": float64(0)},
			},
		},
		{
			name: "audio cd",
			item: model.NewAudioCD("Line\nBreak\tTab", "", 12),
			want: map[string]map[string]any{
				"audio_cd": {"name": "Line\nBreak\tTab", "artist": "", "disks": float64(12)},
			},
		},
	}

	for _, tt := range tests {
		for _, style := range []JSONStyle{JSONSpaced, JSONCompact} {
			t.Run(tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, tt.item.Accept(NewJSONVisitor(&buf, style, true)))

				var got map[string]map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &got), buf.String())
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestJSONVisitor_ASCIIOnly(t *testing.T) {
	var buf bytes.Buffer
	cd := model.NewAudioCD("Café 🎵", "Björk", 1)

	require.NoError(t, cd.Accept(NewJSONVisitor(&buf, JSONSpaced, true)))

	for _, b := range buf.Bytes() {
		require.Less(t, b, byte(0x80), "non-ASCII byte in %q", buf.String())
	}

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Café 🎵", got["audio_cd"]["name"])
	assert.Equal(t, "Björk", got["audio_cd"]["artist"])
}

func TestJSONVisitor_Idempotent(t *testing.T) {
	var first, second bytes.Buffer
	cd := model.NewAudioCD("Complete Clapton", "Eric Clapton", 2)

	require.NoError(t, cd.Accept(NewJSONVisitor(&first, JSONSpaced, true)))
	require.NoError(t, cd.Accept(NewJSONVisitor(&second, JSONSpaced, true)))

	assert.Equal(t, first.String(), second.String())
}

func TestJSONVisitor_WriteError(t *testing.T) {
	err := model.NewAudioCD("Blue", "Joni Mitchell", 1).Accept(NewJSONVisitor(failingWriter{}, JSONSpaced, true))

	assert.ErrorIs(t, err, errWrite)
}

func TestReformat(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		style JSONStyle
		ascii bool
		want  string
	}{
		{"spaced", `{"a":1,"b":{"c":"x"}}`, JSONSpaced, false, `{"a": 1, "b": {"c": "x"}}`},
		{"separators inside strings kept", `{"a":"x,y:z"}`, JSONSpaced, false, `{"a": "x,y:z"}`},
		{"escaped quote", `{"a":"x\",y"}`, JSONSpaced, false, `{"a": "x\",y"}`},
		{"control byte", "{\"a\":\"x\x01\"}", JSONCompact, false, `{"a":"x\u0001"}`},
		{"bmp rune", `{"a":"é"}`, JSONCompact, true, `{"a":"\u00e9"}`},
		{"astral rune", `{"a":"🎵"}`, JSONCompact, true, `{"a":"\ud83c\udfb5"}`},
		{"raw utf8", `{"a":"é"}`, JSONCompact, false, `{"a":"é"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(reformat([]byte(tt.in), tt.style, tt.ascii)))
		})
	}
}
