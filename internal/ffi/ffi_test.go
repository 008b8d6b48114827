package ffi

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, uint32(0x112233FF), RGB(0x11, 0x22, 0x33))
	assert.Equal(t, uint32(0x11223344), RGBA(0x11, 0x22, 0x33, 0x44))
	assert.Equal(t, uint32(0x1F2937FF), HexColor(0x1F2937))
}

func TestRenderCommandJSON(t *testing.T) {
	cmd := TextWithFont("••••", 4, 2, SystemFont("SansSerif", 14), RGB(0, 0, 0))

	data, err := json.Marshal(cmd)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	// Only the populated command variant is serialized
	assert.Len(t, parsed, 1)
	drawText, ok := parsed["DrawText"].(map[string]any)
	require.True(t, ok, "expected DrawText object, got %s", data)
	assert.Equal(t, "••••", drawText["text"])
}

func TestHeadless(t *testing.T) {
	t.Setenv(LibPathEnv, filepath.Join(t.TempDir(), "missing-engine"))

	err := Init()
	if Loaded() {
		t.Skip("engine library was loaded by an earlier Init")
	}
	require.Error(t, err)

	// Must not panic without the engine
	RequestRedraw()
	assert.Empty(t, Version())
}
