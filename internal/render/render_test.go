package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/parseint/internal/batch"
	"github.com/Philanthropists/parseint/internal/config"
	"github.com/Philanthropists/parseint/pkg/intparse"
)

func items(inputs ...string) []batch.Item {
	var out []batch.Item
	for i, in := range inputs {
		out = append(out, batch.Item{Index: i, Input: in, Outcome: intparse.ParseInt(in)})
	}

	return out
}

func Test_TextLines(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, config.FormatText, items("-12", "1o1", ""))
	require.NoError(t, err)

	assert.Equal(t,
		"\"-12\": -12\n"+
			"\"1o1\": invalid character 'o' at position 1\n"+
			"\"\": empty input\n",
		buf.String())
}

func Test_RecordsJSON(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, config.FormatJSON, items("0", "--1", "-"))
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)

	assert.Equal(t, map[string]any{"input": "0", "ok": true, "value": float64(0)}, got[0])
	assert.Equal(t, map[string]any{
		"input":    "--1",
		"ok":       false,
		"position": float64(1),
		"char":     "-",
		"reason":   "duplicate sign",
		"message":  "duplicate sign '-' at position 1",
	}, got[1])
	assert.NotContains(t, got[2], "char")
	assert.Equal(t, "no digits", got[2]["reason"])
}

func Test_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "yaml", items("1"))
	require.Error(t, err)
	assert.True(t, renderErr.Has(err))
}
