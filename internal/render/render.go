package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/parseint/internal/batch"
	"github.com/Philanthropists/parseint/internal/config"
	"github.com/Philanthropists/parseint/pkg/intparse"
)

var renderErr = errs.Class("render")

// Record is the serialized form of one parsed input.
type Record struct {
	Input    string `json:"input"`
	OK       bool   `json:"ok"`
	Value    *int32 `json:"value,omitempty"`
	Position *int   `json:"position,omitempty"`
	Char     string `json:"char,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message,omitempty"`
}

func NewRecord(item batch.Item) Record {
	r := Record{Input: item.Input}

	switch v := item.Outcome.(type) {
	case intparse.Success:
		value := v.Value
		r.OK = true
		r.Value = &value
	case intparse.Failure:
		pos := v.Position
		r.Position = &pos
		if v.Char != intparse.EndOfInput {
			r.Char = string(v.Char)
		}
		r.Reason = v.Reason.String()
		r.Message = v.Error()
	}

	return r
}

func Records(items []batch.Item) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, NewRecord(item))
	}

	return records
}

// Text renders an item as a single human readable line.
func Text(item batch.Item) string {
	return intparse.Match(item.Outcome,
		func(s intparse.Success) string {
			return fmt.Sprintf("%q: %s", item.Input, s)
		},
		func(f intparse.Failure) string {
			return fmt.Sprintf("%q: %s", item.Input, f.Error())
		},
	)
}

func JSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return renderErr.Wrap(enc.Encode(records))
}

func Write(w io.Writer, format string, items []batch.Item) error {
	switch format {
	case config.FormatText:
		for _, item := range items {
			if _, err := fmt.Fprintln(w, Text(item)); err != nil {
				return renderErr.Wrap(err)
			}
		}
		return nil
	case config.FormatJSON:
		return JSON(w, Records(items))
	default:
		return renderErr.New("unknown format %q", format)
	}
}
