package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeIdentifier(t *testing.T) {
	assert.Equal(t, "[a][b][c]", EncodeIdentifier([]string{"a", "b", "c"}))
	assert.Equal(t, "[only]", EncodeIdentifier([]string{"only"}))
	assert.Equal(t, "", EncodeIdentifier(nil))
}

func TestIdentifierRoundTrip(t *testing.T) {
	fields := []string{"Example Street 24", "ULVERSTONE", "TAS", "7315", "A SMITH"}
	assert.Equal(t, fields, DecodeIdentifier(EncodeIdentifier(fields)))
}

func TestDecodeIdentifierMalformed(t *testing.T) {
	assert.Nil(t, DecodeIdentifier(""))
	assert.Nil(t, DecodeIdentifier("no brackets"))
}

func TestMainName(t *testing.T) {
	tests := []struct {
		street string
		want   string
	}{
		{"24 Example Street", "Example Street 24"},
		{"24B Example Street", "Example Street 24B"},
		{"1 Long Road Name", "Long Road Name 1"},
		{"Example Lane", "Example Lane"},
		{"Lot 5 Example Road", "Lot 5 Example Road"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, MainName(tc.street), "street %q", tc.street)
	}
}

func TestFolderName(t *testing.T) {
	assert.Equal(t, "Example Street 24, ULVERSTONE",
		FolderName("24 Example Street", "ULVERSTONE"))

	// No leading street number: ordering unchanged.
	assert.Equal(t, "Example Lane, ULVERSTONE",
		FolderName("Example Lane", "ULVERSTONE"))
}
