package promise

import "sync"

// continuation is one registered callback pair. Exactly one side runs,
// depending on how the owning state settles.
type continuation[T any] struct {
	onFulfilled func(value T)
	onRejected  func(reason error)
}

// state is the lifecycle data shared by every copy of a Promise and by
// every closure composition creates. Exactly one phase is active at any
// instant; the only transitions are pending to fulfilled and pending to
// rejected, each at most once.
type state[T any] struct {
	mutex sync.Mutex

	phase         State
	continuations []continuation[T]
	value         T
	reason        error
}

func newState[T any]() *state[T] {
	return &state[T]{
		phase: StatePending,
	}
}

// fulfill switches the state to fulfilled and invokes the fulfilled side of
// every queued continuation with value, in registration order. The queue is
// snapshotted and cleared before the lock is released, so a continuation
// that registers further continuations sees the settled state and never a
// stale queue.
//
// Calling fulfill or reject on a settled state violates the at-most-once
// resolution contract; the state does not guard against it.
func (s *state[T]) fulfill(value T) {
	s.mutex.Lock()

	queued := s.continuations
	s.continuations = nil
	s.phase = StateFulfilled
	s.value = value

	s.mutex.Unlock()

	for _, c := range queued {
		c.onFulfilled(value)
	}
}

// reject switches the state to rejected and invokes the rejected side of
// every queued continuation with reason, in registration order. The same
// contract as fulfill applies.
func (s *state[T]) reject(reason error) {
	s.mutex.Lock()

	queued := s.continuations
	s.continuations = nil
	s.phase = StateRejected
	s.reason = reason

	s.mutex.Unlock()

	for _, c := range queued {
		c.onRejected(reason)
	}
}

// postContinuation registers a callback pair on a pending state, or invokes
// the matching side immediately when the state has already settled. The
// lock is released before any callback runs, so a callback may call back
// into this state, e.g. to chain a further continuation.
func (s *state[T]) postContinuation(onFulfilled func(value T), onRejected func(reason error)) {
	s.mutex.Lock()

	switch s.phase {
	case StatePending:
		s.continuations = append(s.continuations, continuation[T]{
			onFulfilled: onFulfilled,
			onRejected:  onRejected,
		})
		s.mutex.Unlock()

	case StateFulfilled:
		value := s.value
		s.mutex.Unlock()

		onFulfilled(value)

	case StateRejected:
		reason := s.reason
		s.mutex.Unlock()

		onRejected(reason)
	}
}

func (s *state[T]) currentPhase() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.phase
}
