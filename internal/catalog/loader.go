package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/inventory/internal/catalog/dto"
	"github.com/handiism/inventory/internal/http"
	"github.com/handiism/inventory/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyItem is returned for an item with neither book nor audio_cd.
	ErrEmptyItem = errors.New("item has no book or audio_cd")

	// ErrAmbiguousItem is returned for an item with both book and audio_cd.
	ErrAmbiguousItem = errors.New("item has both book and audio_cd")

	// ErrNegativeCount is returned for negative pages or disks.
	ErrNegativeCount = errors.New("count must not be negative")
)

// Loader reads catalog documents from files or http(s) URLs.
//
// Example usage:
//
//	loader := NewLoader()
//	catalog, err := loader.Load(ctx, "inventory.yaml")
//	if err != nil {
//	    return fmt.Errorf("load catalog: %w", err)
//	}
//	err = catalog.Accept(visitor)
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with a default HTTP client.
func NewLoader() *Loader {
	return &Loader{client: http.NewClient()}
}

// Load reads the catalog at source, a file path or an http(s) URL.
//
// This method performs the following steps:
//  1. Reads the document from disk or over HTTP
//  2. Decodes it as YAML (JSON documents decode too)
//  3. Validates every item
//  4. Loads cover art referenced by audio CDs, relative to source
func (l *Loader) Load(ctx context.Context, source string) (*model.Catalog, error) {
	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = l.client.Get(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", source, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", source, err)
	}

	return l.Build(ctx, doc, source)
}

// Parse decodes a catalog document. Unknown keys are rejected; an empty
// document yields no items.
func Parse(data []byte) (*dto.Document, error) {
	var doc dto.Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &doc, nil
}

// Build validates doc and converts it to a catalog. Relative artwork
// references are resolved against source.
func (l *Loader) Build(ctx context.Context, doc *dto.Document, source string) (*model.Catalog, error) {
	catalog := model.NewCatalog()

	for i, item := range doc.Items {
		element, err := l.buildItem(ctx, item, source)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		catalog.Add(element)
	}

	return catalog, nil
}

func (l *Loader) buildItem(ctx context.Context, item dto.Item, source string) (model.Inventory, error) {
	switch {
	case item.Book != nil && item.AudioCD != nil:
		return nil, ErrAmbiguousItem
	case item.Book != nil:
		if item.Book.Pages < 0 {
			return nil, fmt.Errorf("book %q pages %d: %w", item.Book.Name, item.Book.Pages, ErrNegativeCount)
		}
		return item.Book.ToBook(), nil
	case item.AudioCD != nil:
		if item.AudioCD.Disks < 0 {
			return nil, fmt.Errorf("audio_cd %q disks %d: %w", item.AudioCD.Name, item.AudioCD.Disks, ErrNegativeCount)
		}
		var artwork []byte
		if item.AudioCD.Artwork != "" {
			var err error
			artwork, err = l.loadArtwork(ctx, item.AudioCD.Artwork, source)
			if err != nil {
				return nil, fmt.Errorf("audio_cd %q artwork: %w", item.AudioCD.Name, err)
			}
		}
		return item.AudioCD.ToAudioCD(artwork), nil
	default:
		return nil, ErrEmptyItem
	}
}

// loadArtwork fetches ref, resolving it against source when relative.
func (l *Loader) loadArtwork(ctx context.Context, ref, source string) ([]byte, error) {
	if isURL(ref) {
		return l.client.Get(ctx, ref)
	}

	if isURL(source) {
		base, err := url.Parse(source)
		if err != nil {
			return nil, err
		}
		rel, err := url.Parse(ref)
		if err != nil {
			return nil, err
		}
		return l.client.Get(ctx, base.ResolveReference(rel).String())
	}

	path := ref
	if !filepath.IsAbs(path) && source != "" {
		path = filepath.Join(filepath.Dir(source), path)
	}
	return os.ReadFile(path)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
