package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSharesText(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf, ModeText)
	require.NoError(t, f.Shares(128, "compact", 3, []string{"1|aa", "2|bb"}))
	require.Contains(t, buf.String(), "bitsize=128")
	require.Contains(t, buf.String(), "1|aa")
}

func TestSharesJSON(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf, ModeJSON)
	require.NoError(t, f.Shares(128, "compact", 3, []string{"1|aa", "2|bb"}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, float64(128), decoded["bitsize"])
	require.Equal(t, "compact", decoded["scheme"])
}
