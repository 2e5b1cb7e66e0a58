package model

// Catalog is an ordered collection of inventory items.
//
// The order items are added in is the order they are visited in, so
// rendering a catalog twice with the same visitor produces the same output.
type Catalog struct {
	items []Inventory
}

// NewCatalog creates a catalog holding items in the given order.
func NewCatalog(items ...Inventory) *Catalog {
	c := &Catalog{}
	c.Add(items...)
	return c
}

// Add appends items to the end of the catalog.
func (c *Catalog) Add(items ...Inventory) {
	c.items = append(c.items, items...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the items in catalog order. The slice is a copy.
func (c *Catalog) Items() []Inventory {
	out := make([]Inventory, len(c.items))
	copy(out, c.items)
	return out
}

// Accept visits every item in order and stops at the first error.
func (c *Catalog) Accept(v Visitor) error {
	for _, item := range c.items {
		if err := item.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// SampleCatalog returns the demo inventory: one book and one audio CD.
func SampleCatalog() *Catalog {
	return NewCatalog(
		NewBook("Design Patterns: Elements of Reusable Object-Oriented Software", "GoF", 416),
		NewAudioCD("Complete Clapton", "Eric Clapton", 2),
	)
}
