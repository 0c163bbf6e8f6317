// Package probe classifies a byte stream as ASCII, UTF-8, Latin-1 or a
// mixture, without trusting any declared charset.
//
// The scanner is a byte-driven finite-state machine: outside a sequence it
// classifies single bytes, inside one it consumes continuation bytes until
// the sequence completes or breaks. Broken two-byte sequences whose lead
// looks like typical Latin-1 are recovered as Latin-1 rather than flagged
// invalid, because real salvage input interleaves genuine UTF-8 with stray
// Latin-1 bytes from copy-paste and tool mishandling.
package probe

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gitpan/Text-GuessEncoding/internal/core/domain"
	"github.com/gitpan/Text-GuessEncoding/internal/logger"
)

// seqState is the transient per-character decode state while inside a
// multi-byte UTF-8 sequence. The zero value means "outside any sequence".
type seqState struct {
	remaining int  // continuation bytes still expected
	length    int  // total sequence length including the lead
	lead      byte // lead byte value
}

func (s *seqState) inside() bool { return s.remaining > 0 }

func (s *seqState) reset() { *s = seqState{} }

// Probe consumes r to end of stream and classifies every byte event.
// The name labels the stream in the returned report and is not otherwise
// interpreted. On a source read failure the error wraps
// domain.ErrUnreadableSource and the report still carries the counters
// accumulated up to the failure.
func Probe(r io.Reader, name string) (domain.ProbeReport, error) {
	if r == nil {
		return domain.ProbeReport{Name: name}, domain.ErrInvalidInput
	}

	br := bufio.NewReader(r)
	var c domain.ProbeCounters
	var st seqState

	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report(name, c),
				fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err)
		}
		scanByte(&c, &st, b)
	}

	// A sequence left incomplete at end of stream is counted as one
	// invalid event so every consumed byte stays accounted for.
	if st.inside() {
		logger.Debug("probe %s: truncated %d-byte sequence at end of stream", name, st.length)
		c.UTF8Invalid++
	}

	return report(name, c), nil
}

func report(name string, c domain.ProbeCounters) domain.ProbeReport {
	return domain.ProbeReport{Name: name, Counters: c, Verdict: c.Verdict()}
}

// scanByte advances the state machine by one byte.
func scanByte(c *domain.ProbeCounters, st *seqState, b byte) {
	if st.inside() {
		if b&0xC0 == 0x80 {
			st.remaining--
			if st.remaining == 0 {
				c.UTF8Valid++
				st.reset()
			}
			return
		}
		// Sequence broken: recover, then reclassify b on its own
		// unless the recovery already consumed it.
		consumed := recoverBroken(c, st, b)
		st.reset()
		if !consumed {
			scanByte(c, st, b)
		}
		return
	}
	classify(c, st, b)
}

// classify handles a byte seen outside any multi-byte sequence.
func classify(c *domain.ProbeCounters, st *seqState, b byte) {
	switch {
	case b < 0x80:
		// Control bytes 0x00-0x07 fold into the ASCII bucket too:
		// they are valid ASCII and stray NULs should not tip a
		// verdict towards Latin-1.
		c.ASCII++
	case b&0xE0 == 0xC0:
		*st = seqState{remaining: 1, length: 2, lead: b}
	case b&0xF0 == 0xE0:
		*st = seqState{remaining: 2, length: 3, lead: b}
	case b&0xF8 == 0xF0:
		*st = seqState{remaining: 3, length: 4, lead: b}
	case typicalLatin1[b]:
		c.Latin1Typical++
	default:
		c.UTF8Invalid++
	}
}

// recoverBroken applies the Latin-1 recovery heuristic to a sequence that
// broke on byte b. It reports whether b was consumed by the recovery.
//
// The interesting case is a break on the second byte with a lead from the
// typical Latin-1 set: two independent Latin-1 bytes mistaken for a UTF-8
// lead/continuation pair. Anywhere deeper, the partial sequence is a single
// invalid event and b stands on its own.
func recoverBroken(c *domain.ProbeCounters, st *seqState, b byte) bool {
	brokeOnSecond := st.remaining == st.length-1

	if brokeOnSecond && typicalLatin1[st.lead] {
		switch {
		case b < 0x80:
			// A Latin-1 byte followed by genuine ASCII.
			c.Latin1Typical++
			c.ASCII++
			return true
		case typicalLatin1[b]:
			// Two independent Latin-1 characters.
			c.Latin1Typical += 2
			return true
		default:
			// Neither interpretation fits the lead.
			c.UTF8Invalid++
			return false
		}
	}

	c.UTF8Invalid++
	return false
}
