package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, struct {
		Status  string `json:"status"`
		Address string `json:"address"`
	}{Status: "healthy", Address: "127.0.0.1:9090"}))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "healthy", got["status"])
	assert.Equal(t, "127.0.0.1:9090", got["address"])
}

func TestPrintJSONUnencodable(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, printJSON(&buf, make(chan int)))
}
