package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTypicalLatin1(t *testing.T) {
	// Accented letters and common punctuation are in.
	for _, b := range []byte{0xA7, 0xAB, 0xBB, 0xC0, 0xC4, 0xDF, 0xE9, 0xFC, 0xFF} {
		assert.True(t, IsTypicalLatin1(b), "0x%02X should be typical Latin-1", b)
	}

	// ASCII, stray continuation bytes, and the arithmetic signs are out.
	for _, b := range []byte{0x00, 0x41, 0x7F, 0x80, 0x9F, 0xD7, 0xF7} {
		assert.False(t, IsTypicalLatin1(b), "0x%02X should not be typical Latin-1", b)
	}
}
