// Package core contains the domain events, decision results and business errors of the lending catalog.
//
// Events describe meaningful occurrences like BookLentToPatron or ReturningBookFromPatronFailed
// rather than generic create/update operations. Every event implements DomainEvent.
// Failure events record rejected commands; they never change the catalog.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
