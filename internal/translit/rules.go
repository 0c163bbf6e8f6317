package translit

import "strings"

// nameRule tries to derive a replacement from the space-separated fields
// of a canonical Unicode character name. Rules are pure functions tried in
// fixed priority order after the exact-match table.
type nameRule func(fields []string) (string, bool)

var nameRules = []nameRule{
	latinLetterRule,
	scriptLetterRule,
}

// applyRules runs the structural name rules in priority order.
func applyRules(name string) (string, bool) {
	fields := strings.Fields(name)
	for _, rule := range nameRules {
		if rep, ok := rule(fields); ok {
			return rep, true
		}
	}
	return "", false
}

// letterName parses the shared shape of letter names:
//
//	<SCRIPT> [SMALL|CAPITAL] LETTER [FINAL|SMALL CAPITAL|INVERTED]* <base> [WITH ...]
//
// It returns the base token and whether a SMALL qualifier appeared anywhere
// before it.
func letterName(fields []string) (base string, small, ok bool) {
	i := 1 // fields[0] is the script, checked by the caller
	if i < len(fields) && fields[i] == "SMALL" {
		small = true
		i++
	} else if i < len(fields) && fields[i] == "CAPITAL" {
		i++
	}
	if i >= len(fields) || fields[i] != "LETTER" {
		return "", false, false
	}
	i++

	for i < len(fields) {
		switch fields[i] {
		case "FINAL", "INVERTED":
			i++
		case "SMALL":
			// "SMALL CAPITAL" qualifier pair.
			if i+1 < len(fields) && fields[i+1] == "CAPITAL" {
				small = true
				i += 2
				continue
			}
			return "", false, false
		default:
			base = fields[i]
			i++
			// Any diacritic suffix must start with WITH.
			if i < len(fields) && fields[i] != "WITH" {
				return "", false, false
			}
			return base, small, true
		}
	}
	return "", false, false
}

// latinLetterRule maps Latin letter names to their bare base letter,
// cased by the SMALL qualifier. "LATIN SMALL LETTER A WITH GRAVE" -> "a".
func latinLetterRule(fields []string) (string, bool) {
	if len(fields) == 0 || fields[0] != "LATIN" {
		return "", false
	}
	base, small, ok := letterName(fields)
	if !ok || len(base) != 1 || base[0] < 'A' || base[0] > 'Z' {
		return "", false
	}
	if small {
		return strings.ToLower(base), true
	}
	return base, true
}

// scriptLetterRule maps Arabic and Greek letter names to a dash-wrapped
// spelled-out form. "GREEK SMALL LETTER ALPHA" -> "-alpha-".
func scriptLetterRule(fields []string) (string, bool) {
	if len(fields) == 0 || (fields[0] != "ARABIC" && fields[0] != "GREEK") {
		return "", false
	}
	base, small, ok := letterName(fields)
	if !ok {
		return "", false
	}
	if small {
		return "-" + strings.ToLower(base) + "-", true
	}
	return "-" + strings.ToUpper(base) + "-", true
}
