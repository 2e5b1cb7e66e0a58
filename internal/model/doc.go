// Package model defines the inventory elements and the visitor contract
// used throughout the inventory application.
//
// # Elements
//
// Book and AudioCD are plain data holders. Each exposes a single operation,
// Accept, which calls back into the visitor method for its own type:
//
//	book := model.NewBook("Design Patterns", "GoF", 416)
//	cd := model.NewAudioCD("Complete Clapton", "Eric Clapton", 2)
//
//	book.Accept(v) // v.VisitBook(book)
//	cd.Accept(v)   // v.VisitAudioCD(cd)
//
// # Visitors
//
// A Visitor implements one method per element type. The renderers in the
// render and audio packages are visitors.
//
// # Catalog
//
// Catalog keeps items in insertion order and visits them in that order:
//
//	catalog := model.SampleCatalog()
//	err := catalog.Accept(v)
package model
