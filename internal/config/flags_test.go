package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_Set verifies parsing of well-formed addresses.
func TestNetAddress_Set(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:5002"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 5002, addr.Port)
	assert.Equal(t, "localhost:5002", addr.String())
}

// TestNetAddress_SetPortOnly verifies that a bare ":port" address parses
// with an empty host.
func TestNetAddress_SetPortOnly(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set(":8080"))
	assert.Equal(t, "", addr.Host)
	assert.Equal(t, 8080, addr.Port)
}

// TestNetAddress_SetInvalid verifies rejection of malformed values.
func TestNetAddress_SetInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "no separator", value: "localhost"},
		{name: "non-numeric port", value: "localhost:http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			assert.Error(t, addr.Set(tt.value))
		})
	}
}

// TestNetAddress_StringUnset verifies that an unset address renders empty so
// the flags layer does not shadow later configuration layers.
func TestNetAddress_StringUnset(t *testing.T) {
	var addr NetAddress

	assert.Equal(t, "", addr.String())
}
