// Package catalog implements the lending catalog: books, registered patrons and which patron holds which book.
//
// Catalog is the only entry point. Books and patrons are constructed by the caller and handed over;
// from then on the catalog alone changes their loan state. Every mutating operation follows
// the same steps while holding the catalog lock:
//
//  1. a pure decide function looks at the current tables and returns a core.DecisionResult
//  2. if a journal is configured, the decided event (success or failure) is appended to it
//  3. a success event is applied to the tables, a failure is returned as error
//
// An operation either fully succeeds or leaves the tables unchanged.
//
// RemoveBook and DeregisterPatron do not cascade: a patron may keep holding a removed book,
// and the books of a deregistered patron stay on loan.
//
// Usage:
//
//	c := catalog.New(catalog.WithLogger(slog.Default()))
//	_ = c.AddBook(ctx, catalog.NewBook("The Hobbit", "J.R.R. Tolkien", "Fantasy", "978-0261102217"))
//	_ = c.RegisterPatron(ctx, catalog.NewPatron("Alice", "P001"))
//	err := c.Borrow(ctx, "978-0261102217", "P001")
//	if errors.Is(err, catalog.ErrAlreadyOnLoan) { ... }
package catalog
