package audio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/handiism/inventory/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagger_AudioCD(t *testing.T) {
	var buf bytes.Buffer
	cd := model.NewAudioCD("Complete Clapton", "Eric Clapton", 2)

	require.NoError(t, cd.Accept(NewTagger(&buf, DefaultTagConfig())))

	tag := parseTag(t, buf.Bytes())
	assert.Equal(t, "Complete Clapton", tag.GetTextFrame("TALB").Text)
	assert.Equal(t, "Eric Clapton", tag.GetTextFrame("TPE1").Text)
	assert.Equal(t, "Eric Clapton", tag.GetTextFrame("TPE2").Text)
	assert.Equal(t, "1/2", tag.GetTextFrame("TPOS").Text)
	assert.Empty(t, tag.GetFrames("APIC"))
}

func TestTagger_Book(t *testing.T) {
	var buf bytes.Buffer
	book := model.NewBook("Design Patterns", "GoF", 416)

	require.NoError(t, book.Accept(NewTagger(&buf, nil)))

	tag := parseTag(t, buf.Bytes())
	assert.Equal(t, "Design Patterns", tag.GetTextFrame("TIT2").Text)
	assert.Equal(t, "GoF", tag.GetTextFrame("TPE1").Text)
	assert.Len(t, tag.GetFrames("TXXX"), 1)
}

func TestTagger_TagEmptySkipsFrame(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultTagConfig()
	cfg.AlbumArtist = TagEmpty
	cfg.DiscNumber = TagEmpty

	require.NoError(t, model.NewAudioCD("Blue", "Joni Mitchell", 1).Accept(NewTagger(&buf, cfg)))

	tag := parseTag(t, buf.Bytes())
	assert.Equal(t, "Blue", tag.GetTextFrame("TALB").Text)
	assert.Empty(t, tag.GetFrames("TPE2"))
	assert.Empty(t, tag.GetFrames("TPOS"))
}

func TestTagger_ZeroDisksOmitsPartOfSet(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, model.NewAudioCD("Blue", "Joni Mitchell", 0).Accept(NewTagger(&buf, nil)))

	assert.Empty(t, parseTag(t, buf.Bytes()).GetFrames("TPOS"))
}

func TestTagger_ArtworkResizedToJPEG(t *testing.T) {
	var buf bytes.Buffer
	cd := model.NewAudioCD("Blue", "Joni Mitchell", 1)
	cd.Artwork = testPNG(t, 400, 200)

	cfg := DefaultTagConfig()
	cfg.CoverArtMaxSize = 100
	require.NoError(t, cd.Accept(NewTagger(&buf, cfg)))

	frames := parseTag(t, buf.Bytes()).GetFrames("APIC")
	require.Len(t, frames, 1)
	pic, ok := frames[0].(id3v2.PictureFrame)
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", pic.MimeType)
	assert.Equal(t, byte(id3v2.PTFrontCover), pic.PictureType)

	conf, err := jpeg.DecodeConfig(bytes.NewReader(pic.Picture))
	require.NoError(t, err)
	assert.Equal(t, 100, conf.Width)
	assert.Equal(t, 50, conf.Height)
}

func TestTagger_ArtworkKeptWhenUndecodable(t *testing.T) {
	var buf bytes.Buffer
	cd := model.NewAudioCD("Blue", "Joni Mitchell", 1)
	cd.Artwork = []byte("not an image")

	require.NoError(t, cd.Accept(NewTagger(&buf, nil)))

	frames := parseTag(t, buf.Bytes()).GetFrames("APIC")
	require.Len(t, frames, 1)
	assert.Equal(t, []byte("not an image"), frames[0].(id3v2.PictureFrame).Picture)
}

func parseTag(t *testing.T, data []byte) *id3v2.Tag {
	t.Helper()
	tag, err := id3v2.ParseReader(bytes.NewReader(data), id3v2.Options{Parse: true})
	require.NoError(t, err)
	return tag
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
