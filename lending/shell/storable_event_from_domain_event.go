package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
)

var (
	// ErrMappingToStorableEventFailedForDomainEvent is returned when domain event serialization fails.
	ErrMappingToStorableEventFailedForDomainEvent = errors.New("mapping to storable event failed for domain event")

	// ErrMappingToStorableEventFailedForMetadata is returned when metadata serialization fails.
	ErrMappingToStorableEventFailedForMetadata = errors.New("mapping to storable event failed for metadata")
)

// StorableEventFrom converts a DomainEvent and EventMetadata to a StorableEvent.
func StorableEventFrom(event core.DomainEvent, metadata EventMetadata) (eventstore.StorableEvent, error) {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForDomainEvent, err)
	}

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(metadata)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForMetadata, err)
	}

	storableEvent, err := eventstore.BuildStorableEvent(event.EventType(), event.HasOccurredAt(), payloadJSON, metadataJSON)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForDomainEvent, err)
	}

	return storableEvent, nil
}
