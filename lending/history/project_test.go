package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
	"github.com/AntonStoeckl/lending-catalog-go/lending/history"
)

func Test_Project(t *testing.T) {
	fakeClock := time.Unix(0, 0).UTC()
	events := core.DomainEvents{
		core.BuildBookLentToPatron("978-1", "U001", fakeClock),
		core.BuildBookLentToPatron("978-2", "U002", fakeClock.Add(time.Minute)),
		core.BuildLendingBookToPatronFailed("978-1", "U002", core.ErrAlreadyOnLoan.Error(), fakeClock.Add(2*time.Minute)),
		core.BuildBookReturnedByPatron("978-1", "U001", fakeClock.Add(3*time.Minute)),
		core.BuildBookLentToPatron("978-1", "U002", fakeClock.Add(4*time.Minute)),
		core.BuildBookReturnedByPatron("978-9", "U001", fakeClock.Add(5*time.Minute)),
	}

	firstLending := history.Lending{
		ISBN:       "978-1",
		PatronID:   "U001",
		LentAt:     fakeClock,
		ReturnedAt: fakeClock.Add(3 * time.Minute),
		Returned:   true,
	}
	secondLending := history.Lending{ISBN: "978-2", PatronID: "U002", LentAt: fakeClock.Add(time.Minute)}
	thirdLending := history.Lending{ISBN: "978-1", PatronID: "U002", LentAt: fakeClock.Add(4 * time.Minute)}

	testCases := []struct {
		name             string
		query            history.Query
		expectedLendings []history.Lending
		expectedOpen     int
	}{
		{
			name:             "everything",
			query:            history.BuildQuery("", ""),
			expectedLendings: []history.Lending{firstLending, secondLending, thirdLending},
			expectedOpen:     2,
		},
		{
			name:             "one book",
			query:            history.BuildQuery("978-1", ""),
			expectedLendings: []history.Lending{firstLending, thirdLending},
			expectedOpen:     1,
		},
		{
			name:             "one patron",
			query:            history.BuildQuery("", "U002"),
			expectedLendings: []history.Lending{secondLending, thirdLending},
			expectedOpen:     2,
		},
		{
			name:             "one book and one patron",
			query:            history.BuildQuery("978-1", "U001"),
			expectedLendings: []history.Lending{firstLending},
			expectedOpen:     0,
		},
		{
			name:             "nothing matches",
			query:            history.BuildQuery("978-7", ""),
			expectedLendings: []history.Lending{},
			expectedOpen:     0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := history.Project(events, tc.query, 42)

			// assert
			assert.Equal(t, tc.expectedLendings, result.Lendings)
			assert.Equal(t, tc.expectedOpen, result.OpenCount)
			assert.Equal(t, len(tc.expectedLendings)-tc.expectedOpen, result.FinishedCount)
			assert.Equal(t, uint(42), result.GetSequenceNumber())
		})
	}
}

func Test_Lending_IsOpen(t *testing.T) {
	assert.True(t, history.Lending{ISBN: "978-1", PatronID: "U001"}.IsOpen())
	assert.False(t, history.Lending{ISBN: "978-1", PatronID: "U001", Returned: true}.IsOpen())
}
