package domain

import (
	"fmt"
	"strings"
)

// UnknownRune records one code point the transliterator could not map.
type UnknownRune struct {
	// CodePoint is the Unicode code point value.
	CodePoint rune `json:"code_point"`

	// Name is the canonical Unicode character name, or a stand-in when
	// the code point has none.
	Name string `json:"name"`
}

// Placeholder renders the visible stand-in emitted into the output stream.
func (u UnknownRune) Placeholder() string {
	return fmt.Sprintf("[[%x='%s']]", u.CodePoint, u.Name)
}

// LogLine renders the diagnostic log entry for this code point.
func (u UnknownRune) LogLine() string {
	return fmt.Sprintf("unknown %x='%s'", u.CodePoint, u.Name)
}

// TranslitResult accumulates diagnostics from one transliteration pass.
// The transliterated text itself goes to the caller's writer; only the
// unmapped code points are carried here.
type TranslitResult struct {
	// Unknown lists every code point that fell through to the
	// placeholder fallback, in stream order.
	Unknown []UnknownRune `json:"unknown,omitempty"`
}

// Log returns the diagnostic log, one line per unmapped code point.
// Empty when everything mapped.
func (r TranslitResult) Log() string {
	if len(r.Unknown) == 0 {
		return ""
	}
	var b strings.Builder
	for _, u := range r.Unknown {
		b.WriteString(u.LogLine())
		b.WriteByte('\n')
	}
	return b.String()
}
