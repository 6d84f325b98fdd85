package eventstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"ISBN": "978-1"}`)
	validMetadataJSON := []byte(`{"MessageID": "m-1"}`)

	tests := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "invalid payload JSON",
			payloadJSON:  []byte(`{"invalid": json}`),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata JSON",
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(`{"invalid": json}`),
			expectedErr:  ErrInvalidMetadataJSON,
		},
		{
			name:         "payload checked before metadata",
			payloadJSON:  []byte(`{"key": }`),
			metadataJSON: []byte(`{"key": }`),
			expectedErr:  ErrInvalidPayloadJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			event, err := BuildStorableEvent("BookLentToPatron", validTime, tt.payloadJSON, tt.metadataJSON)

			// assert
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, StorableEvent{}, event)
		})
	}
}

func Test_BuildStorableEvent_Success(t *testing.T) {
	// arrange
	occurredAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	payloadJSON := []byte(`{"ISBN": "978-1", "PatronID": "U001"}`)
	metadataJSON := []byte(`{"MessageID": "m-1"}`)

	// act
	event, err := BuildStorableEvent("BookLentToPatron", occurredAt, payloadJSON, metadataJSON)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "BookLentToPatron", event.EventType)
	assert.Equal(t, occurredAt, event.OccurredAt)
	assert.Equal(t, payloadJSON, event.PayloadJSON)
	assert.Equal(t, metadataJSON, event.MetadataJSON)
}

func Test_BuildStorableEventWithEmptyMetadata(t *testing.T) {
	// act
	event, err := BuildStorableEventWithEmptyMetadata("PatronRegistered", time.Now(), []byte(`{"PatronID": "U001"}`))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), event.MetadataJSON)
}
