package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WithoutShipper(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		log, err := New(env, nil)
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

func TestNew_ShipsJSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("development", &buf)
	require.NoError(t, err)

	log.Info("Payment successful", zap.String("session_id", "cs_1"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "Payment successful", entry["msg"])
	assert.Equal(t, "cs_1", entry["session_id"])
	assert.Contains(t, entry, "timestamp")
}
