// Package shell translates between the domain events of the lending catalog and the
// storable events of the journal, and holds the observability helpers shared by the
// catalog and the history query.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
