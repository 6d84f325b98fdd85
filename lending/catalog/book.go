package catalog

import (
	"fmt"
)

// Book is a single book of the catalog.
// Title, author and ISBN never change after construction. The loan flag is maintained by the Catalog.
type Book struct {
	title    string
	author   string
	category string
	isbn     string
	onLoan   bool
}

// NewBook creates an available Book.
func NewBook(title, author, category, isbn string) *Book {
	return &Book{
		title:    title,
		author:   author,
		category: category,
		isbn:     isbn,
	}
}

func (b *Book) Title() string    { return b.title }
func (b *Book) Author() string   { return b.author }
func (b *Book) Category() string { return b.category }
func (b *Book) ISBN() string     { return b.isbn }

// OnLoan reports whether the book is currently held by a patron.
func (b *Book) OnLoan() bool { return b.onLoan }

// SetCategory recategorizes the book. It does not affect the loan state.
func (b *Book) SetCategory(category string) {
	b.category = category
}

func (b *Book) String() string {
	status := "available"
	if b.onLoan {
		status = "on loan"
	}

	return fmt.Sprintf("%s by %s [%s] (ISBN %s, %s)", b.title, b.author, b.category, b.isbn, status)
}
