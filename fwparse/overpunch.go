package fwparse

// overpunchPositive maps a trailing signed-zone character to a positive
// digit, in order 0..9: "{ABCDEFGHI".
var overpunchPositive = "{ABCDEFGHI"

// overpunchNegative maps a trailing signed-zone character to a negative
// digit, in order 0..9: "}JKLMNOPQR".
var overpunchNegative = "}JKLMNOPQR"

// DecodeOverpunch maps a single trailing signed-zone character to its
// digit and sign. ok is false if c is not a recognized overpunch
// character, in which case digit and sign are meaningless.
func DecodeOverpunch(c byte) (digit int, sign int, ok bool) {
	if i := indexByte(overpunchPositive, c); i >= 0 {
		return i, 1, true
	}
	if i := indexByte(overpunchNegative, c); i >= 0 {
		return i, -1, true
	}
	return 0, 0, false
}

// EncodeOverpunch is the inverse of DecodeOverpunch: it maps a digit
// (0-9) and a sign (+1 or -1) back to the overpunch character. ok is false
// for an out-of-range digit or an unrecognized sign.
func EncodeOverpunch(digit, sign int) (byte, bool) {
	if digit < 0 || digit > 9 {
		return 0, false
	}
	switch sign {
	case 1:
		return overpunchPositive[digit], true
	case -1:
		return overpunchNegative[digit], true
	default:
		return 0, false
	}
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
