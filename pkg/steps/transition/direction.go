package transition

// Direction qualifies a transition for hook consumers. It does not affect
// which step is committed beyond the target already chosen.
type Direction int

const (
	DirectionUnspecified Direction = iota // Direct transition to a named step
	DirectionNext                         // Transition produced by TransitionToNext
	DirectionPrevious                     // Transition produced by TransitionToPrevious
)

// String returns "next", "previous", or "" for unspecified.
func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrevious:
		return "previous"
	default:
		return ""
	}
}

// Request describes a single transition attempt. It is passed to the
// validation hook before the move and to notifiers after it.
type Request struct {
	From      string    // Current step when the request was made
	To        string    // Target step
	Payload   any       // Value passed by the caller, may be nil
	Direction Direction // How the target was chosen
}
