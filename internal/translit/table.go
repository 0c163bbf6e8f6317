package translit

// replacements is the curated transliteration table, keyed by canonical
// Unicode character name. Entries cover the punctuation, diacritic,
// ligature, symbol, fraction and dingbat families common in salvaged
// European text. Consulted before the structural name rules; never
// mutated after init.
var replacements = map[string]string{
	// Diacritic letters with conventional digraph spellings.
	"LATIN SMALL LETTER A WITH DIAERESIS":    "ae",
	"LATIN CAPITAL LETTER A WITH DIAERESIS":  "Ae",
	"LATIN SMALL LETTER O WITH DIAERESIS":    "oe",
	"LATIN CAPITAL LETTER O WITH DIAERESIS":  "Oe",
	"LATIN SMALL LETTER U WITH DIAERESIS":    "ue",
	"LATIN CAPITAL LETTER U WITH DIAERESIS":  "Ue",
	"LATIN SMALL LETTER SHARP S":             "ss",
	"LATIN SMALL LETTER A WITH RING ABOVE":   "aa",
	"LATIN CAPITAL LETTER A WITH RING ABOVE": "Aa",
	"LATIN SMALL LETTER ETH":                 "dh",
	"LATIN CAPITAL LETTER ETH":               "Dh",
	"LATIN SMALL LETTER THORN":               "th",
	"LATIN CAPITAL LETTER THORN":             "Th",
	"LATIN SMALL LETTER O WITH STROKE":       "oe",
	"LATIN CAPITAL LETTER O WITH STROKE":     "Oe",

	// Ligatures.
	"LATIN SMALL LETTER AE":     "ae",
	"LATIN CAPITAL LETTER AE":   "AE",
	"LATIN SMALL LIGATURE OE":   "oe",
	"LATIN CAPITAL LIGATURE OE": "OE",
	"LATIN SMALL LIGATURE FF":   "ff",
	"LATIN SMALL LIGATURE FI":   "fi",
	"LATIN SMALL LIGATURE FL":   "fl",
	"LATIN SMALL LIGATURE FFI":  "ffi",
	"LATIN SMALL LIGATURE FFL":  "ffl",

	// Quotation marks and dashes.
	"LEFT SINGLE QUOTATION MARK":                 "'",
	"RIGHT SINGLE QUOTATION MARK":                "'",
	"SINGLE LOW-9 QUOTATION MARK":                "'",
	"SINGLE HIGH-REVERSED-9 QUOTATION MARK":      "'",
	"LEFT DOUBLE QUOTATION MARK":                 "\"",
	"RIGHT DOUBLE QUOTATION MARK":                "\"",
	"DOUBLE LOW-9 QUOTATION MARK":                "\"",
	"LEFT-POINTING DOUBLE ANGLE QUOTATION MARK":  "<<",
	"RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK": ">>",
	"SINGLE LEFT-POINTING ANGLE QUOTATION MARK":  "<",
	"SINGLE RIGHT-POINTING ANGLE QUOTATION MARK": ">",
	"EN DASH":             "-",
	"EM DASH":             "--",
	"HORIZONTAL BAR":      "--",
	"MINUS SIGN":          "-",
	"SOFT HYPHEN":         "-",
	"HORIZONTAL ELLIPSIS": "...",
	"PRIME":               "'",
	"DOUBLE PRIME":        "''",

	// Spaces and separators.
	"NO-BREAK SPACE": " ",
	"EN SPACE":       " ",
	"EM SPACE":       " ",
	"THIN SPACE":     " ",
	"MIDDLE DOT":     "*",
	"BULLET":         "*",
	"DAGGER":         "+",
	"DOUBLE DAGGER":  "++",
	"PER MILLE SIGN": "o/oo",

	// Signs and symbols.
	"SECTION SIGN":                "S",
	"PILCROW SIGN":                "P",
	"DEGREE SIGN":                 "deg",
	"MICRO SIGN":                  "u",
	"COPYRIGHT SIGN":              "(c)",
	"REGISTERED SIGN":             "(R)",
	"TRADE MARK SIGN":             "(TM)",
	"EURO SIGN":                   "EUR",
	"POUND SIGN":                  "GBP",
	"YEN SIGN":                    "JPY",
	"CENT SIGN":                   "c",
	"MULTIPLICATION SIGN":         "x",
	"DIVISION SIGN":               "/",
	"PLUS-MINUS SIGN":             "+/-",
	"NOT SIGN":                    "-",
	"BROKEN BAR":                  "|",
	"MACRON":                      "-",
	"ACUTE ACCENT":                "'",
	"INVERTED QUESTION MARK":      "?",
	"INVERTED EXCLAMATION MARK":   "!",
	"FEMININE ORDINAL INDICATOR":  "a",
	"MASCULINE ORDINAL INDICATOR": "o",
	"SUPERSCRIPT ONE":             "^1",
	"SUPERSCRIPT TWO":             "^2",
	"SUPERSCRIPT THREE":           "^3",

	// Fractions.
	"VULGAR FRACTION ONE QUARTER":    "1/4",
	"VULGAR FRACTION ONE HALF":       "1/2",
	"VULGAR FRACTION THREE QUARTERS": "3/4",

	// Arrows and dingbats.
	"LEFTWARDS ARROW":  "<-",
	"RIGHTWARDS ARROW": "->",
	"LEFT RIGHT ARROW": "<->",
	"BLACK STAR":       "*",
	"WHITE STAR":       "*",
	"HEAVY CHECK MARK": "v",
	"HEAVY BALLOT X":   "x",

	// ReadRune substitutes this for malformed input bytes; keep the
	// substitution visible but mappable.
	"REPLACEMENT CHARACTER": "?",
}
