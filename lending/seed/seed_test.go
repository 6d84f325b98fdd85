package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-catalog-go/lending/catalog"
	"github.com/AntonStoeckl/lending-catalog-go/lending/seed"
)

func Test_LoadFile_And_Apply(t *testing.T) {
	// setup
	ctx := context.Background()
	c := catalog.New()

	// arrange
	s, err := seed.LoadFile("testdata/library.yaml")
	require.NoError(t, err)

	// act
	err = s.Apply(ctx, c)

	// assert
	require.NoError(t, err)
	assert.Len(t, c.Books(), 2)
	assert.Len(t, c.Patrons(), 2)

	held, err := c.ListHeldBooks(ctx, "U001")
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, "LOTR", held[0].Title())
	assert.True(t, held[0].OnLoan())
}

func Test_LoadFile_Fails_ForAMissingFile(t *testing.T) {
	// act
	_, err := seed.LoadFile("testdata/does-not-exist.yaml")

	// assert
	assert.ErrorIs(t, err, seed.ErrReadingSeedFailed)
}

func Test_Decode(t *testing.T) {
	testCases := []struct {
		name          string
		document      string
		expected      seed.Seed
		expectedError error
	}{
		{
			name:     "empty document",
			document: "",
			expected: seed.Seed{},
		},
		{
			name:     "only patrons",
			document: "patrons:\n  - id: U001\n    name: Rogelio\n",
			expected: seed.Seed{Patrons: []seed.Patron{{ID: "U001", Name: "Rogelio"}}},
		},
		{
			name:          "unknown field",
			document:      "books:\n  - isbn: \"978-1\"\n    publisher: Allen\n",
			expectedError: seed.ErrDecodingSeedFailed,
		},
		{
			name:          "malformed",
			document:      "books: [",
			expectedError: seed.ErrDecodingSeedFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			s, err := seed.Decode(strings.NewReader(tc.document))

			// assert
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func Test_Apply_StopsAtTheFirstRejectedEntry(t *testing.T) {
	// setup
	ctx := context.Background()
	c := catalog.New()
	s := seed.Seed{
		Books: []seed.Book{
			{ISBN: "978-1", Title: "LOTR", Author: "Tolkien", Category: "Fantasy"},
		},
		Patrons: []seed.Patron{{ID: "U001", Name: "Rogelio"}, {ID: "U002", Name: "Mariana"}},
		Loans: []seed.Loan{
			{ISBN: "978-1", PatronID: "U001"},
			{ISBN: "978-1", PatronID: "U002"},
			{ISBN: "978-9", PatronID: "U002"},
		},
	}

	// act
	err := s.Apply(ctx, c)

	// assert
	assert.ErrorIs(t, err, seed.ErrApplyingSeedFailed)
	assert.ErrorIs(t, err, catalog.ErrAlreadyOnLoan)
	assert.Contains(t, err.Error(), "loans[1]")

	held, listErr := c.ListHeldBooks(ctx, "U002")
	require.NoError(t, listErr)
	assert.Empty(t, held)
}
