package dto

import (
	"github.com/handiism/inventory/internal/model"
)

// Document is the top level of a catalog file.
//
//	items:
//	  - book:
//	      name: Design Patterns
//	      author: GoF
//	      pages: 416
//	  - audio_cd:
//	      name: Complete Clapton
//	      artist: Eric Clapton
//	      disks: 2
//	      artwork: covers/clapton.jpg
type Document struct {
	Items []Item `yaml:"items" json:"items"`
}

// Item holds exactly one element. Which field is set decides the type.
type Item struct {
	Book    *Book    `yaml:"book,omitempty" json:"book,omitempty"`
	AudioCD *AudioCD `yaml:"audio_cd,omitempty" json:"audio_cd,omitempty"`
}

// Book is the serialized form of model.Book.
type Book struct {
	Name   string `yaml:"name" json:"name"`
	Author string `yaml:"author" json:"author"`
	Pages  int    `yaml:"pages" json:"pages"`
}

// AudioCD is the serialized form of model.AudioCD.
type AudioCD struct {
	Name   string `yaml:"name" json:"name"`
	Artist string `yaml:"artist" json:"artist"`
	Disks  int    `yaml:"disks" json:"disks"`

	// Artwork is a path or URL of the cover image, relative to the
	// catalog's own location unless absolute.
	Artwork string `yaml:"artwork,omitempty" json:"artwork,omitempty"`
}

// ToBook converts Book to a model.Book.
func (b *Book) ToBook() *model.Book {
	return model.NewBook(b.Name, b.Author, b.Pages)
}

// ToAudioCD converts AudioCD to a model.AudioCD carrying the already loaded
// artwork bytes (nil for none).
func (cd *AudioCD) ToAudioCD(artwork []byte) *model.AudioCD {
	out := model.NewAudioCD(cd.Name, cd.Artist, cd.Disks)
	out.Artwork = artwork
	return out
}
