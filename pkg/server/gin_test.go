package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerIdUsesGivenPort(t *testing.T) {
	id, err := newServerId(9443)
	if err != nil {
		t.Skip("no non-loopback interface available")
	}
	require.NotEmpty(t, id)
	assert.True(t, strings.HasSuffix(id, ":9443"), id)
}
