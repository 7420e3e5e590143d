package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "coffee purchases", want: "coffee purchases"},
		{name: "ampersand survives", input: "Food & Dining", want: "Food & Dining"},
		{name: "tags stripped", input: "<b>dinner</b> at <i>Olive</i>", want: "dinner at Olive"},
		{name: "script removed", input: "<script>alert(1)</script>rent", want: "rent"},
		{name: "surrounding space trimmed", input: "  travel  ", want: "travel"},
		{name: "quotes survive", input: `"Tom's" cafe`, want: `"Tom's" cafe`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeText(tt.input))
		})
	}
}

func TestTrimOptional(t *testing.T) {
	assert.Nil(t, trimOptional(nil))

	blank := "   "
	assert.Nil(t, trimOptional(&blank))

	value := "  Food & Dining "
	got := trimOptional(&value)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Food & Dining", *got)
	}
}
