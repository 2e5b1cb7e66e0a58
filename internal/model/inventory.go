package model

// Inventory is anything that can be stocked and visited.
//
// The set of implementations is closed: *Book and *AudioCD. Adding a new
// element type means adding a method for it to Visitor and implementing it
// in every visitor.
type Inventory interface {
	// Accept calls the visitor method named for the element's concrete type,
	// passing the element itself, and returns the visitor's error.
	Accept(v Visitor) error
}

// Visitor declares one operation per concrete Inventory type.
//
// A visitor is typically an output format: it turns the element into bytes
// and writes them somewhere. Visitors must not retain the element after the
// call returns.
//
// Example:
//
//	type counter struct{ books, cds int }
//
//	func (c *counter) VisitBook(*model.Book) error       { c.books++; return nil }
//	func (c *counter) VisitAudioCD(*model.AudioCD) error { c.cds++; return nil }
type Visitor interface {
	VisitBook(b *Book) error
	VisitAudioCD(cd *AudioCD) error
}

// Kind names an element type. The value doubles as the element tag used by
// the renderers.
type Kind string

const (
	KindBook    Kind = "book"
	KindAudioCD Kind = "audio_cd"
)

// describer records what it visits.
type describer struct {
	kind Kind
	name string
}

func (d *describer) VisitBook(b *Book) error {
	d.kind, d.name = KindBook, b.Name
	return nil
}

func (d *describer) VisitAudioCD(cd *AudioCD) error {
	d.kind, d.name = KindAudioCD, cd.Name
	return nil
}

// Describe returns the kind and name of an element.
func Describe(item Inventory) (Kind, string) {
	var d describer
	_ = item.Accept(&d)
	return d.kind, d.name
}
