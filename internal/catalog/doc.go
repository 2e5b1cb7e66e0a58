// Package catalog loads inventory catalogs from YAML or JSON documents.
//
// A catalog document lists items in order; each item holds exactly one
// element:
//
//	items:
//	  - book: {name: Design Patterns, author: GoF, pages: 416}
//	  - audio_cd: {name: Complete Clapton, artist: Eric Clapton, disks: 2, artwork: clapton.jpg}
//
// # Loading
//
// Documents are read from a file path or an http(s) URL:
//
//	loader := catalog.NewLoader()
//	c, err := loader.Load(ctx, "https://example.com/inventory.yaml")
//
// Artwork references are resolved against the document's own location, so
// a relative "clapton.jpg" next to a remote catalog is fetched from the same
// server.
//
// # Validation
//
// Items with no element, with both elements, or with negative counts are
// rejected with ErrEmptyItem, ErrAmbiguousItem or ErrNegativeCount, wrapped
// with the 1-based item index.
package catalog
