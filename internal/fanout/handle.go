package fanout

import (
	"errors"
	"sync/atomic"
	"time"
)

var (
	// ErrAlreadyJoined is returned by Join when the handle was consumed by an
	// earlier Join.
	ErrAlreadyJoined = errors.New("fanout: handle already joined")
	// ErrNotSpawned is returned by Join on a Handle that did not come from Spawn.
	ErrNotSpawned = errors.New("fanout: handle was never spawned")
)

// State is the lifecycle position of a single unit.
type State int32

const (
	StateCreated State = iota
	StateRunning
	StateJoined
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateJoined:
		return "joined"
	default:
		return "unknown"
	}
}

// Handle refers to one running or finished unit. It is consumed by Join.
type Handle struct {
	index int
	state atomic.Int32
	done  chan struct{}
}

// Spawn starts work(index) on a new goroutine and returns its handle in
// StateRunning. The index is copied into the goroutine.
func Spawn(index int, work WorkFunc) *Handle {
	h := &Handle{index: index, done: make(chan struct{})}
	go func(i int) {
		defer close(h.done)
		work(i)
	}(index)
	h.state.CompareAndSwap(int32(StateCreated), int32(StateRunning))
	return h
}

// Index returns the task index the unit was spawned with.
func (h *Handle) Index() int { return h.index }

// State returns the current lifecycle state.
func (h *Handle) State() State { return State(h.state.Load()) }

// Finished reports, without blocking, whether the work function has returned.
func (h *Handle) Finished() bool {
	if h == nil || h.done == nil {
		return false
	}
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Join blocks until the unit's work function returns, then marks the handle
// joined. Concurrent or repeated calls on the same handle succeed at most once.
// A nil or zero Handle reports ErrNotSpawned.
func (h *Handle) Join() error {
	if h == nil || h.done == nil {
		return ErrNotSpawned
	}
	if h.State() == StateJoined {
		return ErrAlreadyJoined
	}
	<-h.done
	if !h.state.CompareAndSwap(int32(StateRunning), int32(StateJoined)) {
		return ErrAlreadyJoined
	}
	return nil
}

// JoinFunc is notified after each successful join with the time spent
// blocked on that handle.
type JoinFunc func(index int, wait time.Duration)

// JoinAll joins handles in slice order. Every handle is attempted even when
// an earlier one fails; the failures are returned joined together.
func JoinAll(handles []*Handle, joined JoinFunc) error {
	var errs []error
	for _, h := range handles {
		start := time.Now()
		if err := h.Join(); err != nil {
			errs = append(errs, err)
			continue
		}
		if joined != nil {
			joined(h.index, time.Since(start))
		}
	}
	return errors.Join(errs...)
}
