package intparse

// Reason identifies why an input could not be parsed.
type Reason uint8

const (
	InvalidCharacter Reason = iota
	DuplicateSign
	Empty
	NoDigits
	Overflow
)

// String returns a stable label for the reason.
func (r Reason) String() string {
	switch r {
	case InvalidCharacter:
		return "invalid character"
	case DuplicateSign:
		return "duplicate sign"
	case Empty:
		return "empty"
	case NoDigits:
		return "no digits"
	case Overflow:
		return "overflow"
	default:
		return "unknown"
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
