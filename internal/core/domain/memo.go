package domain

import "fmt"

// Outcome is the memoized result of trying to expose a candidate.
type Outcome uint8

const (
	// OutcomeUnknown means the candidate has not been exposed and has not failed
	// often enough to be given up on.
	OutcomeUnknown Outcome = iota
	// OutcomeExposed means the candidate's interleaving has been realized.
	OutcomeExposed
	// OutcomeFailedRepeatedly means attempts to realize the candidate failed at
	// least the configured number of times.
	OutcomeFailedRepeatedly
)

var outcomeNames = map[Outcome]string{
	OutcomeUnknown:          "unknown",
	OutcomeExposed:          "exposed",
	OutcomeFailedRepeatedly: "failed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Resolved reports whether observers should skip candidates with this outcome.
func (o Outcome) Resolved() bool {
	return o == OutcomeExposed || o == OutcomeFailedRepeatedly
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for k, name := range outcomeNames {
		if name == string(text) {
			*o = k
			return nil
		}
	}
	return ErrStoreDecodeFailed
}

// MemoEntry is the memoization record of one candidate.
type MemoEntry struct {
	Key      CandidateKey
	Outcome  Outcome
	Attempts uint32
	Failures uint32
}

// MemoSummary counts ledger entries by outcome.
type MemoSummary struct {
	Unknown          int
	Exposed          int
	FailedRepeatedly int
	Attempts         uint64
}

// Total returns the number of entries summarized.
func (s MemoSummary) Total() int {
	return s.Unknown + s.Exposed + s.FailedRepeatedly
}
