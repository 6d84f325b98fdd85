package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payloadJSON := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshalPayload[core.BookAddedToCatalog](payloadJSON)
	case core.BookRemovedFromCatalogEventType:
		return unmarshalPayload[core.BookRemovedFromCatalog](payloadJSON)
	case core.PatronRegisteredEventType:
		return unmarshalPayload[core.PatronRegistered](payloadJSON)
	case core.PatronDeregisteredEventType:
		return unmarshalPayload[core.PatronDeregistered](payloadJSON)
	case core.BookLentToPatronEventType:
		return unmarshalPayload[core.BookLentToPatron](payloadJSON)
	case core.BookReturnedByPatronEventType:
		return unmarshalPayload[core.BookReturnedByPatron](payloadJSON)
	case core.AddingBookFailedEventType:
		return unmarshalPayload[core.AddingBookFailed](payloadJSON)
	case core.RemovingBookFailedEventType:
		return unmarshalPayload[core.RemovingBookFailed](payloadJSON)
	case core.RegisteringPatronFailedEventType:
		return unmarshalPayload[core.RegisteringPatronFailed](payloadJSON)
	case core.DeregisteringPatronFailedEventType:
		return unmarshalPayload[core.DeregisteringPatronFailed](payloadJSON)
	case core.LendingBookToPatronFailedEventType:
		return unmarshalPayload[core.LendingBookToPatronFailed](payloadJSON)
	case core.ReturningBookFromPatronFailedEventType:
		return unmarshalPayload[core.ReturningBookFromPatronFailed](payloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

// unmarshalPayload decodes the payload into the event struct E.
func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
