// Package intparse parses decimal integers into int32 values and reports the
// exact position and character of the first invalid input.
package intparse

import "math"

const (
	maxPositive uint64 = math.MaxInt32
	maxNegative uint64 = math.MaxInt32 + 1
)

// ParseInt parses an optionally '-'-prefixed sequence of ASCII decimal digits.
//
// Scanning stops at the first character that cannot be part of the number:
// a non-digit, a second '-', or a digit that takes the magnitude past the
// int32 range for the sign already seen. That character and its position are
// reported in the Failure. Empty input fails at position 0 and a lone '-'
// fails at position 1, both with EndOfInput as the character.
func ParseInt(input string) Outcome {
	if input == "" {
		return Failure{Position: 0, Char: EndOfInput, Reason: Empty}
	}

	var (
		negative bool
		digits   int
		acc      uint64
	)
	limit := maxPositive

	pos := 0
	for _, c := range input {
		switch {
		case c == '-' && pos == 0:
			negative = true
			limit = maxNegative
		case c == '-' && negative:
			return Failure{Position: pos, Char: c, Reason: DuplicateSign}
		case c < '0' || c > '9':
			return Failure{Position: pos, Char: c, Reason: InvalidCharacter}
		default:
			acc = acc*10 + uint64(c-'0')
			if acc > limit {
				return Failure{Position: pos, Char: c, Reason: Overflow}
			}
			digits++
		}
		pos++
	}

	if digits == 0 {
		return Failure{Position: pos, Char: EndOfInput, Reason: NoDigits}
	}

	if negative {
		return Success{Value: int32(-int64(acc))}
	}

	return Success{Value: int32(acc)}
}

// MustParseInt is like ParseInt but panics if the input is not a valid int32.
func MustParseInt(input string) int32 {
	v, err := Unpack(ParseInt(input))
	if err != nil {
		panic(err)
	}

	return v
}
