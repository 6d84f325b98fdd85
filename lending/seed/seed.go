package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/lending-catalog-go/lending/catalog"
)

var (
	// ErrReadingSeedFailed is returned when the seed file cannot be read.
	ErrReadingSeedFailed = errors.New("reading seed failed")

	// ErrDecodingSeedFailed is returned for malformed YAML or unknown fields.
	ErrDecodingSeedFailed = errors.New("decoding seed failed")

	// ErrApplyingSeedFailed is returned when the catalog rejects a seed entry.
	ErrApplyingSeedFailed = errors.New("applying seed failed")
)

// Book is one entry of the books list.
type Book struct {
	ISBN     string `yaml:"isbn"`
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
}

// Patron is one entry of the patrons list.
type Patron struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Loan is one entry of the loans list.
type Loan struct {
	ISBN     string `yaml:"isbn"`
	PatronID string `yaml:"patron"`
}

// Seed is a decoded seed document.
type Seed struct {
	Books   []Book   `yaml:"books"`
	Patrons []Patron `yaml:"patrons"`
	Loans   []Loan   `yaml:"loans"`
}

// Decode reads a seed document. Unknown fields are rejected. An empty document is a valid, empty Seed.
func Decode(r io.Reader) (Seed, error) {
	var s Seed

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, errors.Join(ErrDecodingSeedFailed, err)
	}

	return s, nil
}

// LoadFile reads and decodes the seed document at path.
func LoadFile(path string) (Seed, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, errors.Join(ErrReadingSeedFailed, err)
	}

	return Decode(bytes.NewReader(content))
}

// Apply adds the books, registers the patrons, then lends the books.
func (s Seed) Apply(ctx context.Context, c *catalog.Catalog) error {
	for i, b := range s.Books {
		if err := c.AddBook(ctx, catalog.NewBook(b.Title, b.Author, b.Category, b.ISBN)); err != nil {
			return errors.Join(ErrApplyingSeedFailed, fmt.Errorf("books[%d] %q: %w", i, b.ISBN, err))
		}
	}

	for i, p := range s.Patrons {
		if err := c.RegisterPatron(ctx, catalog.NewPatron(p.Name, p.ID)); err != nil {
			return errors.Join(ErrApplyingSeedFailed, fmt.Errorf("patrons[%d] %q: %w", i, p.ID, err))
		}
	}

	for i, l := range s.Loans {
		if err := c.Borrow(ctx, l.ISBN, l.PatronID); err != nil {
			return errors.Join(ErrApplyingSeedFailed, fmt.Errorf("loans[%d] %q to %q: %w", i, l.ISBN, l.PatronID, err))
		}
	}

	return nil
}
