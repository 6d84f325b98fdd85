package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
)

func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, filter eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().MatchingAnyEvent()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
			},
		},
		{
			name: "event_types_are_sorted_and_deduplicated",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookReturnedByPatron", "", "BookLentToPatron", "BookReturnedByPatron").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookLentToPatron", "BookReturnedByPatron"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "partial_predicates_are_dropped",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(
						eventstore.P("PatronID", "U001"),
						eventstore.P("ISBN", ""),
						eventstore.P("", "978-1")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Len(t, f.Items()[0].Predicates(), 1)
				assert.Equal(t, "PatronID", f.Items()[0].Predicates()[0].Key())
				assert.Equal(t, "U001", f.Items()[0].Predicates()[0].Val())
				assert.False(t, f.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "event_types_and_all_predicates",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookLentToPatron").
					AndAllPredicatesOf(
						eventstore.P("PatronID", "U001"),
						eventstore.P("ISBN", "978-1")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookLentToPatron"}, f.Items()[0].EventTypes())
				assert.Len(t, f.Items()[0].Predicates(), 2)
				assert.Equal(t, "ISBN", f.Items()[0].Predicates()[0].Key())
				assert.Equal(t, "PatronID", f.Items()[0].Predicates()[1].Key())
				assert.True(t, f.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "predicates_then_event_types",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(eventstore.P("ISBN", "978-1")).
					AndAnyEventTypeOf("BookAddedToCatalog", "BookRemovedFromCatalog").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookAddedToCatalog", "BookRemovedFromCatalog"}, f.Items()[0].EventTypes())
				assert.Len(t, f.Items()[0].Predicates(), 1)
			},
		},
		{
			name: "or_matching_creates_multiple_items",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookLentToPatron").
					AndAnyPredicateOf(eventstore.P("ISBN", "978-1")).
					OrMatching().
					AnyEventTypeOf("PatronRegistered").
					AndAnyPredicateOf(eventstore.P("PatronID", "U001")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 2)
				assert.Equal(t, []string{"BookLentToPatron"}, f.Items()[0].EventTypes())
				assert.Equal(t, []string{"PatronRegistered"}, f.Items()[1].EventTypes())
				assert.Equal(t, "U001", f.Items()[1].Predicates()[0].Val())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func Test_FilterBuilder_IsReusable(t *testing.T) {
	// arrange
	base := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookLentToPatron")

	// act
	first := base.AndAnyPredicateOf(eventstore.P("ISBN", "978-1")).Finalize()
	second := base.AndAnyPredicateOf(eventstore.P("ISBN", "978-2")).Finalize()

	// assert
	assert.Equal(t, "978-1", first.Items()[0].Predicates()[0].Val())
	assert.Equal(t, "978-2", second.Items()[0].Predicates()[0].Val())
}
