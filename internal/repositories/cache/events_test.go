package cache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "events:products", channelFor("products"))
	assert.Equal(t, "events:plans", channelFor("plans"))
}

func TestChangeEventPayload(t *testing.T) {
	payload, err := json.Marshal(ChangeEvent{Table: "companies", Op: "UPDATE", ID: 5})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"table":"companies","op":"UPDATE","id":5}`, string(payload))
}
