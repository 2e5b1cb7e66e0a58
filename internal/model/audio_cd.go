package model

// AudioCD is a music release on one or more compact discs.
//
// Artwork is optional. Only visitors that can carry images (the ID3 tagger)
// look at it; text renderers ignore it.
//
// Example:
//
//	cd := NewAudioCD("Complete Clapton", "Eric Clapton", 2)
//	err := cd.Accept(visitor) // calls visitor.VisitAudioCD(cd)
type AudioCD struct {
	// Name is the release title.
	Name string

	// Artist is the performing artist.
	Artist string

	// DiskCount is the number of discs in the release. Expected to be
	// non-negative; nothing here enforces it.
	DiskCount int

	// Artwork holds the cover image bytes (JPEG or PNG), or nil.
	Artwork []byte
}

// NewAudioCD creates an AudioCD without artwork.
func NewAudioCD(name, artist string, diskCount int) *AudioCD {
	return &AudioCD{
		Name:      name,
		Artist:    artist,
		DiskCount: diskCount,
	}
}

// HasArtwork returns true if cover art bytes are attached.
func (cd *AudioCD) HasArtwork() bool {
	return len(cd.Artwork) > 0
}

// Accept dispatches to v.VisitAudioCD.
func (cd *AudioCD) Accept(v Visitor) error {
	return v.VisitAudioCD(cd)
}
