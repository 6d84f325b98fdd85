package catalog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
	"github.com/AntonStoeckl/lending-catalog-go/lending/shell"
)

const (
	operationAddBook          = "add_book"
	operationRemoveBook       = "remove_book"
	operationRegisterPatron   = "register_patron"
	operationDeregisterPatron = "deregister_patron"
	operationBorrow           = "borrow"
	operationReturnBook       = "return_book"
	operationSearch           = "search"
	operationListHeldBooks    = "list_held_books"
)

// Journal defines the event store operations the Catalog needs for recording its decisions.
type Journal interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvents ...eventstore.StorableEvent,
	) error
}

// Catalog owns the books, keyed by ISBN, and the registered patrons, keyed by ID.
// It is safe for concurrent use; all operations are serialized.
type Catalog struct {
	mu          sync.Mutex
	books       map[string]*Book
	bookOrder   []string
	patrons     map[string]*Patron
	patronOrder []string

	journal          Journal
	clock            func() time.Time
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
}

// New creates an empty Catalog.
func New(options ...Option) *Catalog {
	c := &Catalog{
		books:       make(map[string]*Book),
		bookOrder:   make([]string, 0),
		patrons:     make(map[string]*Patron),
		patronOrder: make([]string, 0),
		clock:       time.Now,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// AddBook adds the book, keyed by its ISBN.
// Fails with ErrDuplicateBook if a book with the same ISBN is already in the catalog.
func (c *Catalog) AddBook(ctx context.Context, book *Book) error {
	if book == nil {
		return ErrNilBook
	}

	op := operation{name: operationAddBook, isbn: book.isbn}

	return c.execute(ctx, op,
		func(now time.Time) core.DecisionResult {
			return decideAddBook(c.stateFor(book.isbn, ""), book, now)
		},
		func() {
			c.books[book.isbn] = book
			c.bookOrder = append(c.bookOrder, book.isbn)
		},
	)
}

// RemoveBook removes the book with the given ISBN, even if it is on loan.
// A patron holding the book keeps it in their held books.
// Fails with ErrBookNotFound.
func (c *Catalog) RemoveBook(ctx context.Context, isbn string) error {
	op := operation{name: operationRemoveBook, isbn: isbn}

	return c.execute(ctx, op,
		func(now time.Time) core.DecisionResult {
			return decideRemoveBook(c.stateFor(isbn, ""), isbn, now)
		},
		func() {
			delete(c.books, isbn)
			c.bookOrder = slices.DeleteFunc(c.bookOrder, func(key string) bool { return key == isbn })
		},
	)
}

// RegisterPatron registers the patron, keyed by its ID.
// Fails with ErrDuplicatePatron if a patron with the same ID is already registered.
func (c *Catalog) RegisterPatron(ctx context.Context, patron *Patron) error {
	if patron == nil {
		return ErrNilPatron
	}

	op := operation{name: operationRegisterPatron, patronID: patron.id}

	return c.execute(ctx, op,
		func(now time.Time) core.DecisionResult {
			return decideRegisterPatron(c.stateFor("", patron.id), patron, now)
		},
		func() {
			c.patrons[patron.id] = patron
			c.patronOrder = append(c.patronOrder, patron.id)
		},
	)
}

// DeregisterPatron removes the patron with the given ID. Books the patron holds stay on loan.
// Fails with ErrPatronNotFound.
func (c *Catalog) DeregisterPatron(ctx context.Context, patronID string) error {
	op := operation{name: operationDeregisterPatron, patronID: patronID}

	return c.execute(ctx, op,
		func(now time.Time) core.DecisionResult {
			return decideDeregisterPatron(c.stateFor("", patronID), patronID, now)
		},
		func() {
			delete(c.patrons, patronID)
			c.patronOrder = slices.DeleteFunc(c.patronOrder, func(key string) bool { return key == patronID })
		},
	)
}

// Borrow lends the book to the patron: the book goes on loan and is appended to the patron's held books.
// Fails with ErrNotFound if the book or the patron is unknown, and with ErrAlreadyOnLoan.
func (c *Catalog) Borrow(ctx context.Context, isbn, patronID string) error {
	op := operation{name: operationBorrow, isbn: isbn, patronID: patronID}

	return c.execute(ctx, op,
		func(now time.Time) core.DecisionResult {
			return decideBorrow(c.stateFor(isbn, patronID), isbn, patronID, now)
		},
		func() {
			book := c.books[isbn]
			book.onLoan = true
			c.patrons[patronID].take(book)
		},
	)
}

// ReturnBook takes the book back from the patron: the book becomes available and leaves the patron's held books.
// Fails with ErrNotFound if the book or the patron is unknown, and with ErrNotHeldByPatron
// if the patron does not hold this very book.
func (c *Catalog) ReturnBook(ctx context.Context, isbn, patronID string) error {
	op := operation{name: operationReturnBook, isbn: isbn, patronID: patronID}

	return c.execute(ctx, op,
		func(now time.Time) core.DecisionResult {
			return decideReturnBook(c.stateFor(isbn, patronID), isbn, patronID, now)
		},
		func() {
			book := c.books[isbn]
			book.onLoan = false
			c.patrons[patronID].giveBack(book)
		},
	)
}

// ListHeldBooks returns the books the patron holds, in borrow order.
// For an unknown patron it returns an empty slice together with ErrPatronNotFound.
func (c *Catalog) ListHeldBooks(ctx context.Context, patronID string) ([]*Book, error) {
	start := time.Now()
	ctx, span := shell.StartOperationSpan(ctx, c.tracingCollector, operationListHeldBooks, map[string]string{"patron_id": patronID})

	held, err := c.listHeldBooks(ctx, patronID)
	c.observeRead(ctx, operationListHeldBooks, span, start, err)

	return held, err
}

func (c *Catalog) listHeldBooks(ctx context.Context, patronID string) ([]*Book, error) {
	if err := ctx.Err(); err != nil {
		return make([]*Book, 0), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	patron, ok := c.patrons[patronID]
	if !ok {
		return make([]*Book, 0), ErrPatronNotFound
	}

	return patron.HeldBooks(), nil
}

// Book returns the book with the given ISBN.
func (c *Catalog) Book(isbn string) (*Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books[isbn]

	return book, ok
}

// Patron returns the registered patron with the given ID.
func (c *Catalog) Patron(patronID string) (*Patron, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	patron, ok := c.patrons[patronID]

	return patron, ok
}

// Books returns all books in insertion order.
func (c *Catalog) Books() []*Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.booksInOrder()
}

// Patrons returns all registered patrons in registration order.
func (c *Catalog) Patrons() []*Patron {
	c.mu.Lock()
	defer c.mu.Unlock()

	patrons := make([]*Patron, 0, len(c.patronOrder))
	for _, id := range c.patronOrder {
		patrons = append(patrons, c.patrons[id])
	}

	return patrons
}

// booksInOrder must be called with the lock held.
func (c *Catalog) booksInOrder() []*Book {
	books := make([]*Book, 0, len(c.bookOrder))
	for _, isbn := range c.bookOrder {
		books = append(books, c.books[isbn])
	}

	return books
}

// stateFor must be called with the lock held.
func (c *Catalog) stateFor(isbn, patronID string) bookState {
	book, bookExists := c.books[isbn]
	patron, patronExists := c.patrons[patronID]

	s := bookState{
		bookExists:   bookExists,
		patronExists: patronExists,
	}

	if bookExists {
		s.bookOnLoan = book.onLoan
	}

	if bookExists && patronExists {
		s.patronHoldsBook = patron.holds(book)
	}

	return s
}
