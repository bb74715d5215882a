package debug

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		Init(false, "text")
	})

	Init(false, "text")
	Debug("hidden")
	Warn("hidden too")
	assert.False(t, Enabled())
	assert.Empty(t, buf.String())

	Init(true, "json")
	With("backend", "postgres").Debug("checking", "entries", 17)
	assert.True(t, Enabled())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "checking", rec["msg"])
	assert.Equal(t, "postgres", rec["backend"])
	assert.Equal(t, "sqltypes", rec["component"])
	assert.EqualValues(t, 17, rec["entries"])
}
