package entity

// State is the swap session lifecycle phase.
type State int

const (
	// StateIdle means no catalog has been loaded yet.
	StateIdle State = iota
	// StateReady means the catalog is loaded and defaults are selected.
	StateReady
	// StateEditing means the user has modified the form.
	StateEditing
	// StateSubmitting means a commit is in flight.
	StateSubmitting
	// StateSuccess means the last swap committed; reverts to StateReady
	// after the display window.
	StateSuccess
	// StateFailed means the transfer was rejected; reverts to
	// StateEditing on the next user input.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
