package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:        "0 B",
		1023:     "1023 B",
		1536:     "1.5 KB",
		10 << 20: "10.0 MB",
		3 << 30:  "3.0 GB",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatBytes(in), in)
	}
}

func TestTruncate(t *testing.T) {
	description := strings.Repeat("é", 130)

	assert.Equal(t, "Boulangerie", Truncate("Boulangerie", 120))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "abc…", Truncate("abcdef", 4))
	assert.Equal(t, "ab…", Truncate("ab cdef", 4), "the space before the cut is dropped")
	assert.Equal(t, strings.Repeat("é", 119)+Ellipsis, Truncate(description, 120), "limits count runes")
	assert.Empty(t, Truncate("abc", 0))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "Léa", FirstNonEmpty("Anonyme", " ", "", " Léa "))
	assert.Equal(t, "Sans titre", FirstNonEmpty("Sans titre", "  "))
	assert.Equal(t, "Anonyme", FirstNonEmpty("Anonyme"))
}
