package intparse

import (
	"fmt"
	"strconv"
)

// EndOfInput is reported as the failing character when parsing ran out of
// input instead of hitting a bad character.
const EndOfInput rune = -1

// Outcome is the result of ParseInt. It is either a Success or a Failure;
// no other type implements it.
type Outcome interface {
	outcome()
}

// Success holds a parsed value.
type Success struct {
	Value int32
}

// Failure describes the first position at which parsing stopped.
// Position counts characters, not bytes, from zero.
type Failure struct {
	Position int
	Char     rune
	Reason   Reason
}

func (Success) outcome() {}
func (Failure) outcome() {}

func (s Success) String() string {
	return strconv.FormatInt(int64(s.Value), 10)
}

func (f Failure) Error() string {
	switch f.Reason {
	case Empty:
		return "empty input"
	case NoDigits:
		return fmt.Sprintf("no digits after sign at position %d", f.Position)
	case Overflow:
		return fmt.Sprintf("value out of int32 range at position %d (%q)", f.Position, f.Char)
	default:
		return fmt.Sprintf("%s %q at position %d", f.Reason, f.Char, f.Position)
	}
}

// Match calls exactly one of onSuccess or onFailure depending on the variant
// held by o and returns its result.
func Match[T any](o Outcome, onSuccess func(Success) T, onFailure func(Failure) T) T {
	switch v := o.(type) {
	case Success:
		return onSuccess(v)
	case Failure:
		return onFailure(v)
	default:
		panic(fmt.Sprintf("intparse: unexpected outcome %T", o))
	}
}

// Unpack converts an Outcome into the usual value, error pair. The returned
// error belongs to Error and unwraps to the Failure.
func Unpack(o Outcome) (int32, error) {
	switch v := o.(type) {
	case Success:
		return v.Value, nil
	case Failure:
		return 0, Error.Wrap(v)
	default:
		return 0, Error.New("unexpected outcome %T", o)
	}
}
