package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsZero(t *testing.T) {
	assert.Equal(t, "zero", Words(0, false))
	assert.Equal(t, "zero dollars", Words(0, true))
}

func TestWordsIntegers(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1, "one"},
		{13, "thirteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{99, "ninety-nine"},
		{100, "one hundred"},
		{101, "one hundred and one"},
		{345, "three hundred and forty-five"},
		{1000, "one thousand"},
		{1001, "one thousand, one"},
		{125000, "one hundred and twenty-five thousand"},
		{1000000, "one million"},
		{2500000, "two million, five hundred thousand"},
		{1000000000, "one billion"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Words(tc.amount, false), "amount %v", tc.amount)
	}
}

func TestWordsSkipsZeroGroups(t *testing.T) {
	// The zero thousands group contributes nothing.
	assert.Equal(t, "one million, forty-two", Words(1000042, false))
}

func TestWordsCurrencyAndCents(t *testing.T) {
	assert.Equal(t,
		"one thousand, two hundred and thirty-four dollars and fifty-six cents",
		Words(1234.56, true))

	assert.Equal(t, "five hundred thousand dollars", Words(500000, true))

	// Cents clause appears without the currency suffix too.
	assert.Equal(t, "ten and five cents", Words(10.05, false))

	// Zero dollars with cents still reads "zero".
	assert.Equal(t, "zero dollars and ninety-nine cents", Words(0.99, true))
}

func TestWordsCentsRounding(t *testing.T) {
	assert.Equal(t, "one dollars and twenty-three cents", Words(1.2349, true))
	assert.Equal(t, "one dollars and twenty-four cents", Words(1.236, true))
}
