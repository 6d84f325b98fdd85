package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
	"github.com/AntonStoeckl/lending-catalog-go/eventstore/memengine"
	"github.com/AntonStoeckl/lending-catalog-go/lending/catalog"
	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
	"github.com/AntonStoeckl/lending-catalog-go/lending/shell"
)

var errJournalUnavailable = errors.New("journal unavailable")

// switchableJournal delegates to an in-memory store until appendErr is set.
type switchableJournal struct {
	*memengine.EventStore
	appendErr error
}

func (j *switchableJournal) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvents ...eventstore.StorableEvent,
) error {

	if j.appendErr != nil {
		return j.appendErr
	}

	return j.EventStore.Append(ctx, filter, expectedMaxSequenceNumber, storableEvents...)
}

func givenJournal(t *testing.T) *memengine.EventStore {
	t.Helper()

	store, err := memengine.NewEventStore()
	require.NoError(t, err, "error in arranging test data")

	return store
}

func journaledEvents(t *testing.T, store *memengine.EventStore) core.DomainEvents {
	t.Helper()

	storableEvents, _, err := store.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)

	domainEvents, err := shell.DomainEventsFrom(storableEvents)
	require.NoError(t, err)

	return domainEvents
}

func Test_Catalog_Journals_EveryDecision(t *testing.T) {
	// setup
	ctx := context.Background()
	store := givenJournal(t)
	fakeNow := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := catalog.New(
		catalog.WithJournal(store),
		catalog.WithClock(func() time.Time { return fakeNow }),
	)

	// act
	require.NoError(t, c.AddBook(ctx, catalog.NewBook("LOTR", "Tolkien", "Fantasy", "978-1")))
	require.NoError(t, c.RegisterPatron(ctx, catalog.NewPatron("Rogelio", "U001")))
	require.NoError(t, c.Borrow(ctx, "978-1", "U001"))
	require.ErrorIs(t, c.Borrow(ctx, "978-1", "U001"), catalog.ErrAlreadyOnLoan)
	require.NoError(t, c.ReturnBook(ctx, "978-1", "U001"))
	require.NoError(t, c.DeregisterPatron(ctx, "U001"))
	require.NoError(t, c.RemoveBook(ctx, "978-1"))

	// assert
	assert.Equal(t,
		core.DomainEvents{
			core.BuildBookAddedToCatalog("978-1", "LOTR", "Tolkien", "Fantasy", fakeNow),
			core.BuildPatronRegistered("U001", "Rogelio", fakeNow),
			core.BuildBookLentToPatron("978-1", "U001", fakeNow),
			core.BuildLendingBookToPatronFailed("978-1", "U001", core.ErrAlreadyOnLoan.Error(), fakeNow),
			core.BuildBookReturnedByPatron("978-1", "U001", fakeNow),
			core.BuildPatronDeregistered("U001", fakeNow),
			core.BuildBookRemovedFromCatalog("978-1", fakeNow),
		},
		journaledEvents(t, store),
	)
}

func Test_Catalog_JournalFilter_SelectsOnlyChangesOfTheBookOrPatron(t *testing.T) {
	// setup
	ctx := context.Background()
	store := givenJournal(t)
	c := catalog.New(catalog.WithJournal(store))

	// arrange
	givenBooks(t, ctx, c,
		catalog.NewBook("LOTR", "Tolkien", "Fantasy", "978-1"),
		catalog.NewBook("HP", "Rowling", "Fantasy", "978-2"),
	)
	givenPatrons(t, ctx, c, catalog.NewPatron("Rogelio", "U001"), catalog.NewPatron("Mariana", "U002"))
	givenBorrowed(t, ctx, c, "978-2", "U002")
	_ = c.RemoveBook(ctx, "978-9")

	// act
	storableEvents, _, err := store.Query(ctx, catalog.BuildJournalFilter("978-1", "U001"))

	// assert
	require.NoError(t, err)
	require.Len(t, storableEvents, 2)
	assert.Equal(t, core.BookAddedToCatalogEventType, storableEvents[0].EventType)
	assert.Equal(t, core.PatronRegisteredEventType, storableEvents[1].EventType)
}

func Test_Catalog_LeavesTheTablesUnchanged_WhenTheJournalFails(t *testing.T) {
	testCases := []struct {
		name      string
		appendErr error
	}{
		{name: "concurrency conflict", appendErr: eventstore.ErrConcurrencyConflict},
		{name: "unavailable", appendErr: errJournalUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			ctx := context.Background()
			book := catalog.NewBook("LOTR", "Tolkien", "Fantasy", "978-1")
			patron := catalog.NewPatron("Rogelio", "U001")
			journal := &switchableJournal{EventStore: givenJournal(t)}
			c := catalog.New(catalog.WithJournal(journal))

			// arrange
			givenBooks(t, ctx, c, book)
			givenPatrons(t, ctx, c, patron)
			journal.appendErr = tc.appendErr

			// act
			err := c.Borrow(ctx, "978-1", "U001")

			// assert
			assert.ErrorIs(t, err, tc.appendErr)
			assert.False(t, book.OnLoan())
			assert.Empty(t, patron.HeldBooks())
		})
	}
}
