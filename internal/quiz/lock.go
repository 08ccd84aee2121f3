package quiz

// LockState is the state of a Lock.
type LockState int

const (
	Idle LockState = iota
	Locked
)

func (s LockState) String() string {
	if s == Locked {
		return "locked"
	}
	return "idle"
}

// Lock is an idempotency guard with two states, Idle and Locked.
// TryAcquire moves Idle -> Locked; a call while Locked is a documented
// no-op that returns false. Release moves back to Idle.
type Lock struct {
	state LockState
}

// TryAcquire locks l if it is idle.
func (l *Lock) TryAcquire() bool {
	if l.state == Locked {
		return false
	}
	l.state = Locked
	return true
}

// Release returns l to Idle.
func (l *Lock) Release() {
	l.state = Idle
}

// State returns the current state.
func (l *Lock) State() LockState {
	return l.state
}
