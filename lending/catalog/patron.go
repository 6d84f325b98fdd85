package catalog

import (
	"fmt"
	"slices"
)

// Patron is a person who can borrow books.
type Patron struct {
	name      string
	id        string
	heldBooks []*Book
}

// NewPatron creates a Patron holding no books.
func NewPatron(name, id string) *Patron {
	return &Patron{
		name:      name,
		id:        id,
		heldBooks: make([]*Book, 0),
	}
}

func (p *Patron) Name() string { return p.name }
func (p *Patron) ID() string   { return p.id }

// HeldBooks returns the books the patron currently holds, in borrow order.
// The returned slice is a copy.
func (p *Patron) HeldBooks() []*Book {
	return slices.Clone(p.heldBooks)
}

func (p *Patron) holds(book *Book) bool {
	return slices.Contains(p.heldBooks, book)
}

func (p *Patron) take(book *Book) {
	p.heldBooks = append(p.heldBooks, book)
}

func (p *Patron) giveBack(book *Book) {
	p.heldBooks = slices.DeleteFunc(p.heldBooks, func(held *Book) bool { return held == book })
}

func (p *Patron) String() string {
	return fmt.Sprintf("%s (ID %s, %d books held)", p.name, p.id, len(p.heldBooks))
}
