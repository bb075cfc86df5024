package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]any{"id": 7, "name": "Shirt"}

	event, err := NewEvent("catalog.product.created", "7", "product", "catalog-service", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "catalog.product.created", event.EventType)
	assert.Equal(t, "7", event.AggregateID)
	assert.Equal(t, "product", event.AggregateType)
	assert.Equal(t, "catalog-service", event.Source)
	assert.Equal(t, 1, event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEvent_DataRoundTrip(t *testing.T) {
	type productData struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	event, err := NewEvent("catalog.product.updated", "3", "product", "catalog-service",
		productData{ID: 3, Name: "Hat"})
	require.NoError(t, err)

	data, err := event.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"event_type":"catalog.product.updated"`)

	var decoded productData
	require.NoError(t, event.UnmarshalData(&decoded))
	assert.Equal(t, int64(3), decoded.ID)
	assert.Equal(t, "Hat", decoded.Name)
}

func TestEvent_WithCorrelationID(t *testing.T) {
	event, err := NewEvent("catalog.product.deleted", "9", "product", "catalog-service", nil)
	require.NoError(t, err)

	event.WithCorrelationID("corr-1")
	assert.Equal(t, "corr-1", event.CorrelationID)
}
