package logging

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"

	"github.com/Philanthropists/parseint/pkg/intparse"
)

func Duration[S ~string](s S, t time.Duration) Field {
	return zap.Duration(string(s), t)
}

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Outcome inlines the fields of a parse outcome: value on success, or
// position, char and reason on failure.
func Outcome(o intparse.Outcome) Field {
	return zap.Inline(outcomeFields{o})
}

type outcomeFields struct {
	o intparse.Outcome
}

func (f outcomeFields) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	switch v := f.o.(type) {
	case intparse.Success:
		enc.AddInt32("value", v.Value)
	case intparse.Failure:
		enc.AddInt("position", v.Position)
		if v.Char != intparse.EndOfInput {
			enc.AddString("char", string(v.Char))
		}
		enc.AddString("reason", v.Reason.String())
	}

	return nil
}
