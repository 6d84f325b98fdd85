package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/lending/shell"
)

// SearchField names the Book attribute a search matches against.
type SearchField string

const (
	SearchByTitle    SearchField = "title"
	SearchByAuthor   SearchField = "author"
	SearchByCategory SearchField = "category"
)

const logAttrSearchField = "search_field"

// Search returns the books matching value in insertion order.
// Title and author match on a case-insensitive substring, category matches case-insensitively as a whole.
// An unknown field yields an empty result, never an error.
func (c *Catalog) Search(ctx context.Context, field SearchField, value string) []*Book {
	start := time.Now()
	ctx, span := shell.StartOperationSpan(ctx, c.tracingCollector, operationSearch, map[string]string{logAttrSearchField: string(field)})

	matches := c.search(field, value)
	c.observeRead(ctx, operationSearch, span, start, nil)

	return matches
}

func (c *Catalog) search(field SearchField, value string) []*Book {
	match := matcherFor(field, value)
	if match == nil {
		return make([]*Book, 0)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	matches := make([]*Book, 0)
	for _, book := range c.booksInOrder() {
		if match(book) {
			matches = append(matches, book)
		}
	}

	return matches
}

func matcherFor(field SearchField, value string) func(*Book) bool {
	needle := strings.ToLower(value)

	switch field {
	case SearchByTitle:
		return func(b *Book) bool { return strings.Contains(strings.ToLower(b.title), needle) }
	case SearchByAuthor:
		return func(b *Book) bool { return strings.Contains(strings.ToLower(b.author), needle) }
	case SearchByCategory:
		return func(b *Book) bool { return strings.EqualFold(b.category, value) }
	default:
		return nil
	}
}

// ParseSearchField converts user input into a SearchField. Unknown input is returned as is
// and then matches nothing.
func ParseSearchField(input string) SearchField {
	return SearchField(strings.ToLower(strings.TrimSpace(input)))
}
