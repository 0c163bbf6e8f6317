package translit

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/gitpan/Text-GuessEncoding/internal/core/domain"
)

// Latin1ToUTF8 re-encodes a Latin-1 (ISO 8859-1) byte stream from r as
// canonical UTF-8 on w. Every byte is a valid Latin-1 code point, so the
// conversion itself cannot fail; only source or sink errors surface.
func Latin1ToUTF8(r io.Reader, w io.Writer) error {
	if r == nil || w == nil {
		return domain.ErrInvalidInput
	}
	dec := charmap.ISO8859_1.NewDecoder()
	if _, err := io.Copy(w, transform.NewReader(r, dec)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err)
	}
	return nil
}
