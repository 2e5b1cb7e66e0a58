package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/inventory/internal/audio"
	"github.com/handiism/inventory/internal/render"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Input
	Catalog string `yaml:"catalog"` // file path or http(s) URL; empty uses the built-in sample

	// Rendering
	Formats       []string `yaml:"formats"`    // xml, json, id3; visitor order
	JSONStyle     string   `yaml:"json_style"` // spaced, compact
	JSONASCIIOnly bool     `yaml:"json_ascii_only"`

	// Export
	ExportPath           string `yaml:"export_path"`
	FileNameFormat       string `yaml:"file_name_format"` // {num}, {name}, {kind}
	MaxConcurrentExports int    `yaml:"max_concurrent_exports"`

	// Tag settings
	ModifyTags            bool `yaml:"modify_tags"`
	SaveCoverArtInTags    bool `yaml:"save_cover_art_in_tags"`
	CoverArtInTagsResize  bool `yaml:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `yaml:"cover_art_in_tags_max_size"`
	ConvertCoverArtToJPG  bool `yaml:"convert_cover_art_to_jpg"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		Formats:       []string{"xml", "json"},
		JSONStyle:     "spaced",
		JSONASCIIOnly: true,

		ExportPath:           filepath.Join(homeDir, "Inventory"),
		FileNameFormat:       "{num} {name}",
		MaxConcurrentExports: 4,

		ModifyTags:            true,
		SaveCoverArtInTags:    true,
		CoverArtInTagsResize:  true,
		CoverArtInTagsMaxSize: 1000,
		ConvertCoverArtToJPG:  true,
	}
}

// Load reads settings from a YAML file. Keys missing from the file keep
// their defaults; a missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a YAML file, creating parent directories.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ParsedFormats converts Formats to render formats, keeping their order.
func (s *Settings) ParsedFormats() ([]render.Format, error) {
	return render.ParseFormats(s.Formats)
}

// RenderOptions converts settings to render.Options.
func (s *Settings) RenderOptions() (render.Options, error) {
	opts := render.Options{
		JSONASCIIOnly: s.JSONASCIIOnly,
		Tags:          s.TagConfig(),
	}

	switch s.JSONStyle {
	case "", "spaced":
		opts.JSONStyle = render.JSONSpaced
	case "compact":
		opts.JSONStyle = render.JSONCompact
	default:
		return render.Options{}, fmt.Errorf("json_style %q: want spaced or compact", s.JSONStyle)
	}

	return opts, nil
}

// TagConfig converts settings to audio.TagConfig.
func (s *Settings) TagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	cfg.CoverArtResize = s.CoverArtInTagsResize
	cfg.CoverArtMaxSize = s.CoverArtInTagsMaxSize
	cfg.ConvertCoverArtToJPG = s.ConvertCoverArtToJPG
	if !s.SaveCoverArtInTags {
		cfg.CoverArt = audio.TagEmpty
	}
	return cfg
}
