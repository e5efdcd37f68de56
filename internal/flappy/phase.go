package flappy

// Phase is the game's top-level state.
type Phase int

const (
	PhaseHome         Phase = iota // waiting for the first flap
	PhaseRunning                   // full simulation
	PhaseScoreSummary              // run over, world frozen
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseRunning:
		return "running"
	case PhaseScoreSummary:
		return "score-summary"
	default:
		return "unknown"
	}
}

// next is the only phase each phase may move to.
var next = map[Phase]Phase{
	PhaseHome:         PhaseRunning,
	PhaseRunning:      PhaseScoreSummary,
	PhaseScoreSummary: PhaseHome,
}

// CanTransition reports whether moving from p to to is legal.
func (p Phase) CanTransition(to Phase) bool {
	n, ok := next[p]
	return ok && n == to
}
