package store

import "time"

// Op classifies store operations for per-operation latency.
type Op int

const (
	OpList Op = iota
	OpGet
	OpCreate
	OpUpdate
	OpDelete
)

// Delayer injects artificial latency before a store operation completes.
// Implementations must not carry retry, timeout, or cancellation semantics:
// a caller that abandons interest still receives the operation's result.
type Delayer interface {
	Wait(op Op)
}

// Nop returns a delayer that never waits, for tests.
func Nop() Delayer {
	return nopDelayer{}
}

type nopDelayer struct{}

func (nopDelayer) Wait(Op) {}

// FixedDelays sleeps a fixed duration per operation class, simulating
// network latency for loading-state demos.
type FixedDelays struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

// DemoDelays is the latency profile used in demo mode.
func DemoDelays() FixedDelays {
	return FixedDelays{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 400 * time.Millisecond,
		Delete: 300 * time.Millisecond,
	}
}

func (d FixedDelays) Wait(op Op) {
	var wait time.Duration
	switch op {
	case OpList:
		wait = d.List
	case OpGet:
		wait = d.Get
	case OpCreate:
		wait = d.Create
	case OpUpdate:
		wait = d.Update
	case OpDelete:
		wait = d.Delete
	}
	if wait > 0 {
		time.Sleep(wait)
	}
}
