package history

const (
	queryType = "LendingHistory"
)

// Query represents the intent to read the lending history.
// An empty ISBN or PatronID does not narrow the result.
type Query struct {
	ISBN     string
	PatronID string
}

// BuildQuery creates a new Query.
func BuildQuery(isbn, patronID string) Query {
	return Query{
		ISBN:     isbn,
		PatronID: patronID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

func (q Query) matches(isbn, patronID string) bool {
	return (q.ISBN == "" || q.ISBN == isbn) && (q.PatronID == "" || q.PatronID == patronID)
}
