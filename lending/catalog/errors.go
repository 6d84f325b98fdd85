package catalog

import (
	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
)

// Business errors returned by the Catalog, wrapped with the failure event type.
// Match them with errors.Is.
var (
	ErrDuplicateBook   = core.ErrDuplicateBook
	ErrBookNotFound    = core.ErrBookNotFound
	ErrDuplicatePatron = core.ErrDuplicatePatron
	ErrPatronNotFound  = core.ErrPatronNotFound
	ErrAlreadyOnLoan   = core.ErrAlreadyOnLoan
	ErrNotHeldByPatron = core.ErrNotHeldByPatron
	ErrNotFound        = core.ErrNotFound
	ErrNilBook         = core.ErrNilBook
	ErrNilPatron       = core.ErrNilPatron
)
