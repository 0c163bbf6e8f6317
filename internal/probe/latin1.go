package probe

// typicalLatin1 marks byte values statistically common in Latin-1 encoded
// European text: accented letters, guillemets, section and degree signs,
// typical punctuation. Used to tell genuine Latin-1 bytes apart from UTF-8
// noise. Built once at init, read-only thereafter.
var typicalLatin1 [256]bool

func init() {
	for _, b := range []byte{
		0xA0, // NO-BREAK SPACE
		0xA1, // INVERTED EXCLAMATION MARK
		0xA7, // SECTION SIGN
		0xAB, // LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
		0xB0, // DEGREE SIGN
		0xB4, // ACUTE ACCENT
		0xB7, // MIDDLE DOT
		0xBB, // RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK
		0xBC, // VULGAR FRACTION ONE QUARTER
		0xBD, // VULGAR FRACTION ONE HALF
		0xBE, // VULGAR FRACTION THREE QUARTERS
		0xBF, // INVERTED QUESTION MARK
	} {
		typicalLatin1[b] = true
	}
	// Accented letters A-grave through y-diaeresis, minus the
	// multiplication and division signs sitting in the middle.
	for b := 0xC0; b <= 0xFF; b++ {
		if b == 0xD7 || b == 0xF7 {
			continue
		}
		typicalLatin1[byte(b)] = true
	}
}

// IsTypicalLatin1 reports whether b belongs to the typical Latin-1 set.
func IsTypicalLatin1(b byte) bool {
	return typicalLatin1[b]
}
