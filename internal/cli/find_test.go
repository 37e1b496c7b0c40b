package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "multiples of ten",
			args: []string{"find", "--where", "divisible:10", "10", "20", "5", "6", "7", "10", "20", "30", "1", "2", "3", "30"},
			want: "[10, 20, 30]\n",
		},
		{
			name: "prime digits",
			args: []string{"find", "-w", "prime-digits", "10", "20", "5", "75", "10", "20", "333", "5", "77", "30", "1", "2", "3", "30", "3", "5", "7", "3", "573"},
			want: "[3, 5, 7, 3, 573]\n",
		},
		{
			name: "default predicate is even",
			args: []string{"find", "2", "2", "3", "2", "2"},
			want: "[2, 2]\n",
		},
		{
			name: "negative numbers after double dash",
			args: []string{"find", "--", "-2", "-4", "1", "6"},
			want: "[-2, -4]\n",
		},
		{
			name: "no run",
			args: []string{"find", "--where", "even", "1", "3"},
			want: "[]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFind_Stdin(t *testing.T) {
	out, err := execute(t, "10 20 5\n10 20 30\n", "find", "--where", "divisible:10")
	require.NoError(t, err)
	assert.Equal(t, "[10, 20, 30]\n", out)

	out, err = execute(t, "", "find")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestFind_JSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "find", "--where", "divisible:10", "10", "20", "5", "10", "20", "30")
	require.NoError(t, err)

	var resp struct {
		Status  string     `json:"status"`
		Data    FindResult `json:"data"`
		TraceID string     `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test-session-cli", resp.TraceID)
	assert.Equal(t, FindResult{
		Input:     []int{10, 20, 5, 10, 20, 30},
		Predicate: "divisible:10",
		Start:     3,
		Length:    3,
		Run:       []int{10, 20, 30},
	}, resp.Data)
}

func TestFind_BadPredicate(t *testing.T) {
	out, err := execute(t, "", "find", "--where", "divisible:0", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeBadPredicate)
	assert.Contains(t, out, "divisor must be nonzero")
}

func TestFind_BadInput(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "find", "1", "two")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeBadInput, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, `"two" is not an integer`)
}

func TestFind_JSONNoRun(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "find", "--where", "even", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"run":[]`)
	assert.Contains(t, out, `"length":0`)
}
