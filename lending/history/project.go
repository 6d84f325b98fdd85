package history

import (
	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
)

// Project implements the query logic for the lending history.
// It is a pure function: events in, projection out.
//
// Query Logic:
//
//	GIVEN: the journaled lend and return events, in journal order
//	WHEN: LendingHistory query is executed
//	THEN: LendingHistory with one Lending per BookLentToPatron matching the query
//	INCLUDES: open lendings and finished lendings with their return time
//	EXCLUDES: returns without a preceding lend, failure events
func Project(history core.DomainEvents, query Query, maxSequence uint) LendingHistory {
	lendings := make([]Lending, 0)
	open := make(map[string]int) // key: ISBN|PatronID, value: index into lendings

	for _, event := range history {
		switch e := event.(type) {
		case core.BookLentToPatron:
			if !query.matches(e.ISBN, e.PatronID) {
				continue
			}

			open[lendingKey(e.ISBN, e.PatronID)] = len(lendings)
			lendings = append(lendings, Lending{
				ISBN:     e.ISBN,
				PatronID: e.PatronID,
				LentAt:   e.OccurredAt,
			})

		case core.BookReturnedByPatron:
			key := lendingKey(e.ISBN, e.PatronID)
			idx, ok := open[key]
			if !ok {
				continue
			}

			lendings[idx].ReturnedAt = e.OccurredAt
			lendings[idx].Returned = true
			delete(open, key)
		}
	}

	return LendingHistory{
		Lendings:       lendings,
		OpenCount:      len(open),
		FinishedCount:  len(lendings) - len(open),
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter creates the filter for the lend and return events of the queried book and/or patron.
// Empty query fields are dropped by the filter builder, so an empty Query selects all of them.
func BuildEventFilter(query Query) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookLentToPatronEventType,
			core.BookReturnedByPatronEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("ISBN", query.ISBN),
			eventstore.P("PatronID", query.PatronID),
		).
		Finalize()
}

func lendingKey(isbn, patronID string) string {
	return isbn + "|" + patronID
}
