package core

import (
	"errors"
)

// Business rule violations. Callers match them with errors.Is.
var (
	ErrDuplicateBook   = errors.New("a book with this ISBN is already in the catalog")
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicatePatron = errors.New("a patron with this ID is already registered")
	ErrPatronNotFound  = errors.New("patron not found")
	ErrAlreadyOnLoan   = errors.New("book is already on loan")
	ErrNotHeldByPatron = errors.New("book is not held by this patron")
	ErrNotFound        = errors.New("book or patron not found")
	ErrNilBook         = errors.New("book must not be nil")
	ErrNilPatron       = errors.New("patron must not be nil")
)
