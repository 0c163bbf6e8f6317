package domain

import "fmt"

// ProbeCounters accumulates byte-event classifications over one probed
// stream. Multi-byte UTF-8 sequences fold into a single UTF8Valid event on
// completion; every other consumed byte lands in exactly one bucket.
type ProbeCounters struct {
	// UTF8Valid counts completed multi-byte UTF-8 sequences.
	UTF8Valid int `json:"utf8_valid"`

	// UTF8Invalid counts bytes (or discarded partial sequences) that fit
	// neither ASCII, UTF-8, nor the typical Latin-1 set.
	UTF8Invalid int `json:"utf8_invalid"`

	// Latin1Typical counts bytes from the typical Latin-1 set seen outside
	// a UTF-8 sequence, plus bytes recovered by the broken-sequence
	// heuristic.
	Latin1Typical int `json:"latin1_typ"`

	// ASCII counts plain ASCII bytes (0x00-0x7F) outside a UTF-8 sequence.
	ASCII int `json:"ascii"`
}

// Verdict is the encoding classification derived from probe counters.
type Verdict string

const (
	// VerdictASCII means every byte was plain ASCII.
	VerdictASCII Verdict = "ascii"

	// VerdictUTF8 means the stream decoded as pure, valid UTF-8.
	VerdictUTF8 Verdict = "utf8"

	// VerdictLatin1 means the stream looks like Latin-1: typical Latin-1
	// bytes or invalid UTF-8, with no valid UTF-8 sequences at all.
	VerdictLatin1 Verdict = "latin1"

	// VerdictMixed means the stream interleaves valid UTF-8 with Latin-1
	// or invalid bytes. Expected for real-world salvage input, not an
	// error.
	VerdictMixed Verdict = "mixed"
)

// Verdict derives the encoding classification from the counters.
func (c ProbeCounters) Verdict() Verdict {
	switch {
	case c.UTF8Valid > 0 && c.UTF8Invalid == 0 && c.Latin1Typical == 0:
		return VerdictUTF8
	case c.UTF8Valid == 0 && (c.UTF8Invalid > 0 || c.Latin1Typical > 0):
		return VerdictLatin1
	case c.UTF8Valid == 0 && c.UTF8Invalid == 0 && c.Latin1Typical == 0:
		return VerdictASCII
	default:
		return VerdictMixed
	}
}

// ProbeReport is the result of probing one named stream.
type ProbeReport struct {
	// Name labels the stream for reporting only (file path, "-", etc).
	Name string `json:"name"`

	// Counters holds the accumulated classification counts.
	Counters ProbeCounters `json:"counters"`

	// Verdict is the derived classification.
	Verdict Verdict `json:"verdict"`
}

// String renders the report in the canonical single-line form.
func (r ProbeReport) String() string {
	return fmt.Sprintf("%s: utf8_valid=%d utf8_invalid=%d latin1_typ=%d ascii=%d",
		r.Name, r.Counters.UTF8Valid, r.Counters.UTF8Invalid,
		r.Counters.Latin1Typical, r.Counters.ASCII)
}
