package testutil

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	data, err := io.ReadAll(Input("1", "2 3"))
	require.NoError(t, err)
	assert.Equal(t, "1\n2 3\n", string(data))

	data, err = io.ReadAll(Input())
	require.NoError(t, err)
	assert.Empty(t, data)
}
