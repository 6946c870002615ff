package system

// Phase is one of the three fixed top-level execution stages of a runtime's
// frame loop. Initialize is ticked once at startup by the driver; Simulate
// and Present are ticked every frame thereafter, in that order.
type Phase int

const (
	PhaseInitialize Phase = iota // 0: world seeding, one-shot setup
	PhaseSimulate                // 1: per-frame simulation logic
	PhasePresent                 // 2: observation, export, output

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialize:
		return "Initialize"
	case PhaseSimulate:
		return "Simulate"
	case PhasePresent:
		return "Present"
	default:
		return "Unknown"
	}
}

func (p Phase) valid() bool {
	return p >= PhaseInitialize && p < phaseCount
}
