package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	var payload struct {
		ID ID `json:"id"`
	}

	t.Run("String", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"id": "item-42"}`), &payload))
		assert.Equal(t, "item-42", payload.ID.String())
	})

	t.Run("Number", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &payload))
		assert.Equal(t, "42", payload.ID.String())
	})

	t.Run("Null", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &payload))
		assert.Equal(t, "", payload.ID.String())
	})
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Price Amount `json:"price"`
	}

	t.Run("NumericString", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": "10.00"}`), &payload))
		assert.Equal(t, 10.0, payload.Price.Float64())
	})

	t.Run("Number", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": 5.5}`), &payload))
		assert.Equal(t, 5.5, payload.Price.Float64())
	})

	t.Run("EmptyString", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": ""}`), &payload))
		assert.Equal(t, 0.0, payload.Price.Float64())
	})

	t.Run("NonNumericString", func(t *testing.T) {
		err := json.Unmarshal([]byte(`{"price": "free"}`), &payload)
		assert.Error(t, err)
	})
}
