package catalog

import (
	"fmt"
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
)

// bookState is the part of the catalog tables a decision about one book and one patron depends on.
type bookState struct {
	bookExists      bool
	bookOnLoan      bool
	patronExists    bool
	patronHoldsBook bool
}

func rejection(event core.DomainEvent, err error) core.DecisionResult {
	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType(), err))
}

// decideAddBook
//
//	GIVEN: a book with an ISBN
//	WHEN: it is added to the catalog
//	THEN: BookAddedToCatalog
//	ERROR: DuplicateBook if a book with the same ISBN is in the catalog
func decideAddBook(s bookState, book *Book, now time.Time) core.DecisionResult {
	if s.bookExists {
		return rejection(core.BuildAddingBookFailed(book.isbn, core.ErrDuplicateBook.Error(), now), core.ErrDuplicateBook)
	}

	return core.SuccessDecision(core.BuildBookAddedToCatalog(book.isbn, book.title, book.author, book.category, now))
}

// decideRemoveBook
//
//	GIVEN: an ISBN
//	WHEN: the book is removed from the catalog
//	THEN: BookRemovedFromCatalog, regardless of the loan state
//	ERROR: BookNotFound if no book with this ISBN is in the catalog
func decideRemoveBook(s bookState, isbn string, now time.Time) core.DecisionResult {
	if !s.bookExists {
		return rejection(core.BuildRemovingBookFailed(isbn, core.ErrBookNotFound.Error(), now), core.ErrBookNotFound)
	}

	return core.SuccessDecision(core.BuildBookRemovedFromCatalog(isbn, now))
}

// decideRegisterPatron
//
//	GIVEN: a patron with an ID
//	WHEN: the patron is registered
//	THEN: PatronRegistered
//	ERROR: DuplicatePatron if a patron with the same ID is registered
func decideRegisterPatron(s bookState, patron *Patron, now time.Time) core.DecisionResult {
	if s.patronExists {
		return rejection(core.BuildRegisteringPatronFailed(patron.id, core.ErrDuplicatePatron.Error(), now), core.ErrDuplicatePatron)
	}

	return core.SuccessDecision(core.BuildPatronRegistered(patron.id, patron.name, now))
}

// decideDeregisterPatron
//
//	GIVEN: a patron ID
//	WHEN: the patron is deregistered
//	THEN: PatronDeregistered, regardless of the books the patron holds
//	ERROR: PatronNotFound if no patron with this ID is registered
func decideDeregisterPatron(s bookState, patronID string, now time.Time) core.DecisionResult {
	if !s.patronExists {
		return rejection(core.BuildDeregisteringPatronFailed(patronID, core.ErrPatronNotFound.Error(), now), core.ErrPatronNotFound)
	}

	return core.SuccessDecision(core.BuildPatronDeregistered(patronID, now))
}

// decideBorrow
//
//	GIVEN: an ISBN and a patron ID
//	WHEN: the patron borrows the book
//	THEN: BookLentToPatron
//	ERROR: NotFound if the book or the patron is unknown, without telling which
//	ERROR: AlreadyOnLoan if any patron holds the book
func decideBorrow(s bookState, isbn, patronID string, now time.Time) core.DecisionResult {
	if !s.bookExists || !s.patronExists {
		return rejection(core.BuildLendingBookToPatronFailed(isbn, patronID, core.ErrNotFound.Error(), now), core.ErrNotFound)
	}

	if s.bookOnLoan {
		return rejection(core.BuildLendingBookToPatronFailed(isbn, patronID, core.ErrAlreadyOnLoan.Error(), now), core.ErrAlreadyOnLoan)
	}

	return core.SuccessDecision(core.BuildBookLentToPatron(isbn, patronID, now))
}

// decideReturnBook
//
//	GIVEN: an ISBN and a patron ID
//	WHEN: the patron returns the book
//	THEN: BookReturnedByPatron
//	ERROR: NotFound if the book or the patron is unknown, without telling which
//	ERROR: NotHeldByPatron if this very book is not among the patron's held books
func decideReturnBook(s bookState, isbn, patronID string, now time.Time) core.DecisionResult {
	if !s.bookExists || !s.patronExists {
		return rejection(core.BuildReturningBookFromPatronFailed(isbn, patronID, core.ErrNotFound.Error(), now), core.ErrNotFound)
	}

	if !s.patronHoldsBook {
		return rejection(core.BuildReturningBookFromPatronFailed(isbn, patronID, core.ErrNotHeldByPatron.Error(), now), core.ErrNotHeldByPatron)
	}

	return core.SuccessDecision(core.BuildBookReturnedByPatron(isbn, patronID, now))
}
