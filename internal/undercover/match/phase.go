package match

// Phase is the step of the session the device is currently in.
type Phase uint8

const (
	PhaseHome Phase = iota
	PhaseSetup
	PhaseReveal
	PhaseDiscuss
	PhaseVote
	PhaseRoundSummary
	PhaseResult
)

var phaseNames = map[Phase]string{
	PhaseHome:         "home",
	PhaseSetup:        "setup",
	PhaseReveal:       "reveal",
	PhaseDiscuss:      "discuss",
	PhaseVote:         "vote",
	PhaseRoundSummary: "round_summary",
	PhaseResult:       "result",
}

// transitions lists the forward edges of the session. Reset is not listed,
// it is accepted from every phase.
var transitions = map[Phase][]Phase{
	PhaseHome:         {PhaseSetup},
	PhaseSetup:        {PhaseHome, PhaseReveal},
	PhaseReveal:       {PhaseReveal, PhaseDiscuss},
	PhaseDiscuss:      {PhaseVote},
	PhaseVote:         {PhaseRoundSummary, PhaseResult},
	PhaseRoundSummary: {PhaseDiscuss},
	PhaseResult:       {PhaseSetup, PhaseRoundSummary, PhaseResult},
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// CanTransitionTo reports whether next directly follows p.
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}
