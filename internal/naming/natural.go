package naming

import "strings"

// NaturalCompare orders a and b the way a person reads numbered file names.
// Each name is split into alternating text and digit chunks, always starting
// with a (possibly empty) text chunk. Chunks are compared pairwise: text
// chunks as plain strings, digit chunks by numeric value. A name whose chunks
// run out first sorts first, so "photo1.jpg" comes before "photo.jpg" because
// the text chunk "photo" is a prefix of "photo.jpg".
//
// Digit runs of any length are supported (no integer overflow). Names with
// equal chunks (e.g. "1.jpg" and "01.jpg") are ordered by fewer leading
// zeros, then byte-wise, so only identical strings compare equal.
func NaturalCompare(a, b string) int {
	ra, rb := a, b
	for {
		var ta, tb string
		ta, ra = cutChunk(ra, false)
		tb, rb = cutChunk(rb, false)
		if c := strings.Compare(ta, tb); c != 0 {
			return c
		}

		switch {
		case ra == "" && rb == "":
			return tieBreak(a, b)
		case ra == "":
			return -1
		case rb == "":
			return 1
		}

		var da, db string
		da, ra = cutChunk(ra, true)
		db, rb = cutChunk(rb, true)
		if c := compareNumbers(da, db); c != 0 {
			return c
		}
	}
}

// cutChunk splits s after its leading run of digits (digits=true) or
// non-digits (digits=false).
func cutChunk(s string, digits bool) (chunk, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

// compareNumbers compares two non-empty digit strings by numeric value.
func compareNumbers(da, db string) int {
	ta, tb := strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	return strings.Compare(ta, tb)
}

// tieBreak orders names whose chunks are equal: the shorter one (fewer
// leading zeros) first, then byte-wise.
func tieBreak(a, b string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
