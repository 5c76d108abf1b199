package server

// State is a stage of the server lifecycle.
type State int32

const (
	StateStarting State = iota
	StateListening
	StateServing
	StateFailed
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateListening:
		return "listening"
	case StateServing:
		return "serving"
	case StateFailed:
		return "failed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
