// Package audio renders inventory elements as ID3v2 tags.
//
// # ID3 Tagging
//
// Tagger is a model.Visitor that writes one encoded ID3v2.4 tag per visited
// element:
//
//	var buf bytes.Buffer
//	tagger := audio.NewTagger(&buf, audio.DefaultTagConfig())
//	err := cd.Accept(tagger)
//	os.WriteFile("clapton.id3", buf.Bytes(), 0644)
//
// The tagger supports:
//   - Title, Artist, Album Artist, Album
//   - Part of a set (disc count)
//   - Page count (user-defined text frame)
//   - Cover Art (resized and converted to JPEG on request)
package audio
