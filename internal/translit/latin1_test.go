package translit

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpan/Text-GuessEncoding/internal/core/domain"
)

func TestLatin1ToUTF8(t *testing.T) {
	// Raw Latin-1: J ü r g e n
	in := []byte{0x4A, 0xFC, 0x72, 0x67, 0x65, 0x6E}

	var out bytes.Buffer
	err := Latin1ToUTF8(bytes.NewReader(in), &out)

	require.NoError(t, err)
	assert.Equal(t, "Jürgen", out.String())
}

func TestLatin1ToUTF8_ASCIIUnchanged(t *testing.T) {
	var out bytes.Buffer
	err := Latin1ToUTF8(bytes.NewReader([]byte("already ascii")), &out)

	require.NoError(t, err)
	assert.Equal(t, "already ascii", out.String())
}

func TestLatin1ToUTF8_HighBytes(t *testing.T) {
	// § « é » — every Latin-1 byte has a code point.
	var out bytes.Buffer
	err := Latin1ToUTF8(bytes.NewReader([]byte{0xA7, 0xAB, 0xE9, 0xBB}), &out)

	require.NoError(t, err)
	assert.Equal(t, "§«é»", out.String())
}

func TestLatin1ToUTF8_SourceFailure(t *testing.T) {
	var out bytes.Buffer
	err := Latin1ToUTF8(iotest.ErrReader(errors.New("boom")), &out)

	assert.ErrorIs(t, err, domain.ErrUnreadableSource)
}

func TestLatin1ToUTF8_NilArgs(t *testing.T) {
	assert.ErrorIs(t, Latin1ToUTF8(nil, &bytes.Buffer{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, Latin1ToUTF8(bytes.NewReader(nil), nil), domain.ErrInvalidInput)
}
