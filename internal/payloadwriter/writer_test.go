package payloadwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/engine"
)

func samplePayload() *engine.SubmissionPayload {
	return &engine.SubmissionPayload{
		AgentName:      "ALICE SMITH",
		OfficeCode:     "ULV",
		FileNameFolder: "Example Street 24, ULVERSTONE",
	}
}

func TestMarshalDeterministic(t *testing.T) {
	payload := samplePayload()

	first, err := Marshal(payload)
	require.NoError(t, err)
	second, err := Marshal(payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasSuffix(string(first), "\n"))
}

func TestMarshalNullFields(t *testing.T) {
	data, err := Marshal(samplePayload())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Unpopulated pointer fields serialize as explicit nulls, never as
	// missing keys or empty strings.
	val, present := decoded["annex_item_13"]
	assert.True(t, present)
	assert.Nil(t, val)

	val, present = decoded["marketing_price_20"]
	assert.True(t, present)
	assert.Nil(t, val)

	vendor, ok := decoded["vendor_4"].(map[string]interface{})
	require.True(t, ok)
	val, present = vendor["full_name"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "{office}_payload.json")

	path, err := w.Write(samplePayload())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ULV_payload.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ALICE SMITH", decoded["agent_name"])
}

func TestFileNamePlaceholders(t *testing.T) {
	w := NewWriter("", "{office}_{folder}")
	name := w.FileName(samplePayload())

	assert.Equal(t, "ULV_Example Street 24 ULVERSTONE.json", name)
}

func TestFileNameUUIDUnique(t *testing.T) {
	w := NewWriter("", "")
	payload := samplePayload()

	first := w.FileName(payload)
	second := w.FileName(payload)

	assert.True(t, strings.HasSuffix(first, ".json"))
	assert.NotEqual(t, first, second)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Example Street 24 ULVERSTONE",
		sanitizeName("Example Street 24, ULVERSTONE"))
	assert.Equal(t, "a-b c", sanitizeName("a/b  c?"))
}
