package batch

import "github.com/Philanthropists/parseint/pkg/intparse"

type Summary struct {
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
	ByReason  map[intparse.Reason]int `json:"by_reason,omitempty"`
}

func (s *Summary) Add(o intparse.Outcome) {
	s.Total++

	f, ok := o.(intparse.Failure)
	if !ok {
		s.Succeeded++
		return
	}

	s.Failed++
	if s.ByReason == nil {
		s.ByReason = make(map[intparse.Reason]int)
	}
	s.ByReason[f.Reason]++
}
