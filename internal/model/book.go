package model

// Book is a printed title held in the inventory.
//
// Example:
//
//	book := NewBook("Design Patterns", "GoF", 416)
//	err := book.Accept(visitor) // calls visitor.VisitBook(book)
type Book struct {
	// Name is the book title.
	Name string

	// Author is the author, or authors, as printed on the cover.
	Author string

	// PageCount is the number of pages. Expected to be non-negative;
	// nothing here enforces it.
	PageCount int
}

// NewBook creates a Book.
func NewBook(name, author string, pageCount int) *Book {
	return &Book{
		Name:      name,
		Author:    author,
		PageCount: pageCount,
	}
}

// Accept dispatches to v.VisitBook.
func (b *Book) Accept(v Visitor) error {
	return v.VisitBook(b)
}
