package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bogem/id3v2"
	ioutils "github.com/handiism/inventory/internal/io"
	"github.com/handiism/inventory/internal/model"
)

// TagEditAction defines how an individual ID3 frame is handled.
type TagEditAction int

const (
	// TagEmpty leaves the frame out of the tag.
	TagEmpty TagEditAction = iota

	// TagModify writes the frame from the element's fields.
	TagModify
)

// TagConfig holds tagging configuration for each ID3 frame.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags:  true,
//	    Title:       TagModify, // book name
//	    Artist:      TagModify, // author or artist
//	    Album:       TagModify, // CD name
//	    AlbumArtist: TagEmpty,  // no TPE2
//	    DiscNumber:  TagModify, // "1/<disks>"
//	    PageCount:   TagModify, // TXXX "Pages"
//	    CoverArt:    TagModify, // APIC front cover
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are written.
	ModifyTags bool

	// Title controls the TIT2 (Title) frame. Books only.
	Title TagEditAction

	// Artist controls the TPE1 (Lead artist) frame: book author or CD artist.
	Artist TagEditAction

	// AlbumArtist controls the TPE2 (Album artist) frame. CDs only.
	AlbumArtist TagEditAction

	// Album controls the TALB (Album title) frame. CDs only.
	Album TagEditAction

	// DiscNumber controls the TPOS (Part of a set) frame. CDs only.
	DiscNumber TagEditAction

	// PageCount controls the TXXX "Pages" frame. Books only.
	PageCount TagEditAction

	// CoverArt controls the APIC (Attached picture) frame. CDs only.
	CoverArt TagEditAction

	// CoverArtResize shrinks artwork to fit CoverArtMaxSize before embedding.
	CoverArtResize bool

	// CoverArtMaxSize is the maximum width and height in pixels.
	CoverArtMaxSize int

	// ConvertCoverArtToJPG re-encodes artwork as JPEG before embedding.
	ConvertCoverArtToJPG bool
}

// DefaultTagConfig returns the default tag configuration.
//
// Every frame is written; artwork is resized to 1000px and converted to JPEG.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:           true,
		Title:                TagModify,
		Artist:               TagModify,
		AlbumArtist:          TagModify,
		Album:                TagModify,
		DiscNumber:           TagModify,
		PageCount:            TagModify,
		CoverArt:             TagModify,
		CoverArtResize:       true,
		CoverArtMaxSize:      1000,
		ConvertCoverArtToJPG: true,
	}
}

// Tagger renders inventory elements as ID3v2.4 tags.
//
// Tagger is a model.Visitor. Each visit builds a fresh tag from the element
// and writes the encoded tag bytes to the underlying writer:
//   - Book: Title (TIT2), Artist (TPE1), "Pages" user text (TXXX)
//   - AudioCD: Album (TALB), Artist (TPE1), Album Artist (TPE2),
//     Part of a set (TPOS), Cover Art (APIC)
//
// Example:
//
//	f, _ := os.Create("clapton.id3")
//	defer f.Close()
//	err := cd.Accept(NewTagger(f, DefaultTagConfig()))
type Tagger struct {
	w            io.Writer
	config       *TagConfig
	imageService *ioutils.ImageService
}

// NewTagger creates a Tagger writing to w.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(w io.Writer, config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{
		w:            w,
		config:       config,
		imageService: ioutils.NewImageService(),
	}
}

// VisitBook writes a tag describing b.
func (t *Tagger) VisitBook(b *model.Book) error {
	tag := newTag()

	if t.config.ModifyTags {
		if t.config.Title == TagModify {
			tag.AddTextFrame("TIT2", id3v2.EncodingUTF8, b.Name)
		}
		if t.config.Artist == TagModify {
			tag.AddTextFrame("TPE1", id3v2.EncodingUTF8, b.Author)
		}
		if t.config.PageCount == TagModify {
			tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
				Encoding:    id3v2.EncodingUTF8,
				Description: "Pages",
				Value:       strconv.Itoa(b.PageCount),
			})
		}
	}

	return t.write(tag, b.Name)
}

// VisitAudioCD writes a tag describing cd, with its cover art if any.
func (t *Tagger) VisitAudioCD(cd *model.AudioCD) error {
	tag := newTag()

	if t.config.ModifyTags {
		if t.config.Album == TagModify {
			tag.AddTextFrame("TALB", id3v2.EncodingUTF8, cd.Name)
		}
		if t.config.Artist == TagModify {
			tag.AddTextFrame("TPE1", id3v2.EncodingUTF8, cd.Artist)
		}
		if t.config.AlbumArtist == TagModify {
			tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, cd.Artist)
		}
		if t.config.DiscNumber == TagModify && cd.DiskCount > 0 {
			tag.AddTextFrame("TPOS", id3v2.EncodingUTF8, fmt.Sprintf("1/%d", cd.DiskCount))
		}
	}

	if t.config.CoverArt == TagModify && cd.HasArtwork() {
		t.addArtwork(tag, t.prepareArtwork(cd.Artwork))
	}

	return t.write(tag, cd.Name)
}

func newTag() *id3v2.Tag {
	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	return tag
}

func (t *Tagger) write(tag *id3v2.Tag, name string) error {
	if _, err := tag.WriteTo(t.w); err != nil {
		return fmt.Errorf("write id3 tag for %q: %w", name, err)
	}
	return nil
}

// prepareArtwork applies the resize and JPEG settings. Processing failures
// keep the original bytes.
func (t *Tagger) prepareArtwork(artwork []byte) []byte {
	ctx := context.Background()

	if t.config.CoverArtResize && t.config.CoverArtMaxSize > 0 {
		if resized, err := t.imageService.ResizeImage(ctx, artwork, t.config.CoverArtMaxSize, t.config.CoverArtMaxSize); err == nil {
			artwork = resized
		}
	}
	if t.config.ConvertCoverArtToJPG {
		if converted, err := t.imageService.ConvertToJPEG(ctx, artwork); err == nil {
			artwork = converted
		}
	}

	return artwork
}

// addArtwork embeds cover art as the front cover picture frame.
func (t *Tagger) addArtwork(tag *id3v2.Tag, artwork []byte) {
	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    http.DetectContentType(artwork),
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
