// Package config provides configuration management for inventory.
//
// This package handles:
//   - Loading and saving settings from YAML files
//   - Default configuration values
//   - Conversion to render.Options and audio.TagConfig for other packages
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/inventory.yaml")
//	// A missing file yields DefaultSettings()
//
// # Example File
//
//	catalog: https://example.com/inventory.yaml
//	formats: [xml, json]
//	json_style: spaced
//	json_ascii_only: true
//	export_path: /srv/exports
//	file_name_format: "{num} {kind} {name}"
//	max_concurrent_exports: 4
//	modify_tags: true
//	save_cover_art_in_tags: true
//	cover_art_in_tags_max_size: 500
package config
