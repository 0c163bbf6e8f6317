// Package translit renders UTF-8 text as a readable ASCII approximation.
//
// Each decoded code point below 128 copies through unchanged. Anything else
// resolves through its canonical Unicode character name: first the curated
// replacement table, then the structural letter-name rules, and finally a
// visible [[hex='NAME']] placeholder that is also recorded in the
// diagnostic log. No code point aborts the pass; output completeness wins
// over per-character fidelity.
package translit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"github.com/gitpan/Text-GuessEncoding/internal/core/domain"
	"github.com/gitpan/Text-GuessEncoding/internal/logger"
)

// Transliterator maps Unicode code points to ASCII replacement strings.
// The table is fixed at construction; a Transliterator is safe for
// concurrent use across passes.
type Transliterator struct {
	table map[string]string
}

// New creates a transliterator with the built-in replacement table.
func New() *Transliterator {
	return &Transliterator{table: replacements}
}

// NewWithOverrides creates a transliterator whose table is the built-in
// one with the given name-keyed entries merged over it.
func NewWithOverrides(overrides map[string]string) *Transliterator {
	if len(overrides) == 0 {
		return New()
	}
	table := make(map[string]string, len(replacements)+len(overrides))
	for name, rep := range replacements {
		table[name] = rep
	}
	for name, rep := range overrides {
		table[name] = rep
	}
	return &Transliterator{table: table}
}

// Replacement resolves the ASCII replacement for a single code point.
// It reports false when the code point falls through every rule and only
// the placeholder fallback remains.
func (t *Transliterator) Replacement(cp rune) (string, bool) {
	if cp < utf8.RuneSelf {
		return string(cp), true
	}
	name := runenames.Name(cp)
	if rep, ok := t.table[name]; ok {
		return rep, true
	}
	return applyRules(name)
}

// ToASCII decodes UTF-8 text from r and writes its ASCII approximation to
// w. Unmappable code points are emitted as placeholders and collected in
// the returned result; only a source or sink failure stops the pass, and
// diagnostics gathered up to that point remain valid.
func (t *Transliterator) ToASCII(r io.Reader, w io.Writer) (domain.TranslitResult, error) {
	var res domain.TranslitResult
	if r == nil || w == nil {
		return res, domain.ErrInvalidInput
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		cp, size, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			bw.Flush()
			return res, fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err)
		}

		// ReadRune signals a malformed byte with RuneError and size 1.
		// Recover the raw byte so the diagnostic names it.
		if cp == utf8.RuneError && size == 1 {
			br.UnreadRune()
			b, _ := br.ReadByte()
			res = t.emitUnknown(bw, rune(b), "unknown character name", res)
			continue
		}

		if cp < utf8.RuneSelf {
			bw.WriteByte(byte(cp))
			continue
		}

		if rep, ok := t.Replacement(cp); ok {
			bw.WriteString(rep)
			continue
		}

		name := runenames.Name(cp)
		if name == "" {
			name = "unknown character name"
		}
		res = t.emitUnknown(bw, cp, name, res)
	}

	if err := bw.Flush(); err != nil {
		return res, fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err)
	}
	return res, nil
}

// emitUnknown writes the placeholder for an unmappable code point and
// records it in the diagnostic log.
func (t *Transliterator) emitUnknown(w *bufio.Writer, cp rune, name string, res domain.TranslitResult) domain.TranslitResult {
	u := domain.UnknownRune{CodePoint: cp, Name: name}
	w.WriteString(u.Placeholder())
	res.Unknown = append(res.Unknown, u)
	logger.Warn("%s", u.LogLine())
	return res
}
