package report

// State is a run's position in Idle → FetchingData → {FetchFailed |
// Synthesizing → {SynthesisFailed | Delivered}}.
type State int

const (
	Idle State = iota
	FetchingData
	FetchFailed
	Synthesizing
	SynthesisFailed
	Delivered
)

var stateNames = map[State]string{
	Idle:            "idle",
	FetchingData:    "fetching_data",
	FetchFailed:     "fetch_failed",
	Synthesizing:    "synthesizing",
	SynthesisFailed: "synthesis_failed",
	Delivered:       "delivered",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == FetchFailed || s == SynthesisFailed || s == Delivered
}

// TerminalState maps the error returned by Run to the state the run ended in.
// Input rejected before fetching counts as FetchFailed.
func TerminalState(err error) State {
	if err == nil {
		return Delivered
	}
	if IsSynthesisFailure(err) {
		return SynthesisFailed
	}
	return FetchFailed
}
