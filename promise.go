// Package promise implements a JavaScript-style promise vocabulary type:
// a value-semantic handle for a heterogeneous value that will exist at some
// point in time, composed through Then-chaining.
//
// There is no built-in executor or event loop. Continuations run
// synchronously on whichever goroutine settles the promise, or inline at
// registration time when the promise has already settled. Waiting is
// expressed only by registering a continuation; no operation blocks.
//
// Promises carrying zero, two, or three values use the tuple subpackage's
// Unit, Pair, and Triple as their value type, with Then2 and Then3
// spreading the elements back into positional arguments.
package promise

import "github.com/promisekit/go-promise/tuple"

// Promise is a copyable handle for one shared promise state. All copies,
// and all closures created by composing on any copy, refer to the same
// state; the state lives as long as any of them does.
type Promise[T any] struct {
	state *state[T]
}

// New creates a pending promise and invokes resolver with its resolve and
// reject capabilities, exactly once, before returning. The resolver may
// settle the promise synchronously, store the capabilities to settle it
// later from any goroutine, or never settle it at all: a never-resolved
// promise is legal and simply never dispatches its continuations.
func New[T any](resolver Resolver[T]) Promise[T] {
	p := Promise[T]{
		state: newState[T](),
	}

	resolver(p.state.fulfill, p.state.reject)

	return p
}

// Pending returns a promise in the pending state with no way to settle it.
func Pending[T any]() Promise[T] {
	return Promise[T]{
		state: newState[T](),
	}
}

// Resolve returns a promise already fulfilled with value.
func Resolve[T any](value T) Promise[T] {
	p := Pending[T]()
	p.state.fulfill(value)

	return p
}

// Resolve0 returns a zero-value promise, already fulfilled.
func Resolve0() Promise[tuple.Unit] {
	return Resolve(tuple.Unit{})
}

// Resolve2 returns a two-value promise already fulfilled with first and
// second.
func Resolve2[A, B any](first A, second B) Promise[tuple.Pair[A, B]] {
	return Resolve(tuple.PairOf(first, second))
}

// Resolve3 returns a three-value promise already fulfilled with first,
// second and third.
func Resolve3[A, B, C any](first A, second B, third C) Promise[tuple.Triple[A, B, C]] {
	return Resolve(tuple.TripleOf(first, second, third))
}

// Reject returns a promise already rejected with reason. The value type
// cannot be inferred from reason and must be supplied explicitly.
func Reject[T any](reason error) Promise[T] {
	p := Pending[T]()
	p.state.reject(reason)

	return p
}

// State reports the current phase. It is an observation only: by the time
// the caller acts on it, a pending promise may already have settled.
func (p Promise[T]) State() State {
	return p.state.currentPhase()
}
