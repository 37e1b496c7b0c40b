package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/longrun/internal/harness"
)

func TestSelfTest_Text(t *testing.T) {
	out, err := execute(t, "", "selftest")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ multiples_of_ten")
	assert.Contains(t, out, "✓ prime_digits_at_end")
	assert.Contains(t, out, "0 failed")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestSelfTest_JSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "selftest")
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   harness.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, resp.Data.Failed)
	assert.Equal(t, resp.Data.Total, resp.Data.Passed)
	assert.NotZero(t, resp.Data.Total)
}
