// Package history implements the Lending History query.
//
// It projects the lending cycles recorded in the catalog journal: every time a book was lent
// to a patron, and whether and when it came back. The query can be narrowed to one book,
// one patron, or both.
//
// The projection only sees what was journaled. A catalog without journal has no history,
// and a book removed while on loan shows up as an open lending forever.
package history
