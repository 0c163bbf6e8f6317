// Package domain defines the core entities for Text-GuessEncoding.
//
// This package is the innermost layer. It has NO external dependencies
// and defines the fundamental types:
//
//   - ProbeCounters: byte-event classification counts for one stream
//   - Verdict: the encoding classification derived from the counters
//   - ProbeReport: counters plus label and verdict for one probed stream
//   - TranslitResult: diagnostics from one transliteration pass
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
