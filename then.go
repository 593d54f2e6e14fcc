package promise

import "github.com/promisekit/go-promise/tuple"

// The then family below is one composition operation split across four
// functions, one per continuation return shape: no value (ThenVoid), an
// inner promise (ThenFlat, which flattens), and a plain value (Then, where
// the value may itself be a tuple). Then2 and Then3 are the spread-variants
// of Then and ThenVoid for multi-value promises. Methods cannot introduce
// type parameters, so the selection happens by name at the call site; the
// Go signatures enforce that an optional rejection handler returns the same
// shape as the fulfillment handler.
//
// Each function registers a wrapper pair on the source promise and returns
// a new pending promise driven by those wrappers. A handler reports failure
// by returning a non-nil error; a panic inside a handler is captured too.
// Either way the new promise is rejected with the failure and the error
// never propagates up the settling call stack. When no rejection handler is
// supplied, a rejection of the source passes through to the new promise
// unchanged.

// Then returns a promise resolved by applying onFulfilled to this
// promise's value, or the optional onRejected to its rejection reason.
func Then[T, U any](p Promise[T], onFulfilled func(value T) (U, error), onRejected ...func(reason error) (U, error)) Promise[U] {
	next := Pending[U]()

	p.state.postContinuation(
		func(value T) {
			settle(next, func() (U, error) {
				return onFulfilled(value)
			})
		},
		rejectedSide(next, onRejected),
	)

	return next
}

// ThenVoid composes a continuation that produces no value. The returned
// promise is a zero-value promise, fulfilled empty when the continuation
// returns nil.
func ThenVoid[T any](p Promise[T], onFulfilled func(value T) error, onRejected ...func(reason error) error) Promise[tuple.Unit] {
	return Then(p,
		func(value T) (tuple.Unit, error) {
			return tuple.Unit{}, onFulfilled(value)
		},
		liftVoid(onRejected)...,
	)
}

// ThenFlat composes a continuation that itself returns a promise. The
// returned promise settles with the inner promise's outcome: it registers
// itself as a continuation of the inner promise rather than wrapping it,
// so there is never a promise of a promise.
func ThenFlat[T, U any](p Promise[T], onFulfilled func(value T) (Promise[U], error), onRejected ...func(reason error) (Promise[U], error)) Promise[U] {
	next := Pending[U]()

	p.state.postContinuation(
		func(value T) {
			flatten(next, func() (Promise[U], error) {
				return onFulfilled(value)
			})
		},
		func(reason error) {
			if 0 == len(onRejected) {
				next.state.reject(reason)

				return
			}

			flatten(next, func() (Promise[U], error) {
				return onRejected[0](reason)
			})
		},
	)

	return next
}

// Then2 is Then for a two-value promise, with the pair spread into
// positional arguments.
func Then2[A, B, U any](p Promise[tuple.Pair[A, B]], onFulfilled func(first A, second B) (U, error), onRejected ...func(reason error) (U, error)) Promise[U] {
	return Then(p,
		func(pair tuple.Pair[A, B]) (U, error) {
			return onFulfilled(pair.Values())
		},
		onRejected...,
	)
}

// Then3 is Then for a three-value promise, with the triple spread into
// positional arguments.
func Then3[A, B, C, U any](p Promise[tuple.Triple[A, B, C]], onFulfilled func(first A, second B, third C) (U, error), onRejected ...func(reason error) (U, error)) Promise[U] {
	return Then(p,
		func(triple tuple.Triple[A, B, C]) (U, error) {
			return onFulfilled(triple.Values())
		},
		onRejected...,
	)
}

// ThenVoid2 is ThenVoid for a two-value promise.
func ThenVoid2[A, B any](p Promise[tuple.Pair[A, B]], onFulfilled func(first A, second B) error, onRejected ...func(reason error) error) Promise[tuple.Unit] {
	return ThenVoid(p,
		func(pair tuple.Pair[A, B]) error {
			return onFulfilled(pair.Values())
		},
		onRejected...,
	)
}

// ThenVoid3 is ThenVoid for a three-value promise.
func ThenVoid3[A, B, C any](p Promise[tuple.Triple[A, B, C]], onFulfilled func(first A, second B, third C) error, onRejected ...func(reason error) error) Promise[tuple.Unit] {
	return ThenVoid(p,
		func(triple tuple.Triple[A, B, C]) error {
			return onFulfilled(triple.Values())
		},
		onRejected...,
	)
}

// Catch composes a rejection handler that recovers into a value of the
// same type. Fulfilled values pass through unchanged.
func (p Promise[T]) Catch(onRejected func(reason error) (T, error)) Promise[T] {
	return Then(p,
		func(value T) (T, error) {
			return value, nil
		},
		onRejected,
	)
}

// Finally composes a callback that observes settlement without changing
// the outcome: the returned promise settles exactly as this one did, after
// callback runs. A failure inside callback replaces the outcome with a
// rejection.
func (p Promise[T]) Finally(callback func()) Promise[T] {
	next := Pending[T]()

	p.state.postContinuation(
		func(value T) {
			settle(next, func() (T, error) {
				callback()

				return value, nil
			})
		},
		func(reason error) {
			if err := guard(callback); nil != err {
				next.state.reject(err)

				return
			}

			next.state.reject(reason)
		},
	)

	return next
}

// settle resolves next from one handler invocation: fulfilled with the
// handler's value, or rejected with its returned error or captured panic.
func settle[U any](next Promise[U], handler func() (U, error)) {
	value, err := protect(handler)
	if nil != err {
		next.state.reject(err)

		return
	}

	next.state.fulfill(value)
}

// flatten resolves next from a promise-returning handler by chaining next
// onto the inner promise.
func flatten[U any](next Promise[U], handler func() (Promise[U], error)) {
	inner, err := protect(handler)
	if nil != err {
		next.state.reject(err)

		return
	}

	inner.state.postContinuation(next.state.fulfill, next.state.reject)
}

// rejectedSide builds the rejected-side wrapper for an optional handler.
// With no handler, the rejection passes through to next with the identical
// reason.
func rejectedSide[U any](next Promise[U], handlers []func(reason error) (U, error)) func(reason error) {
	if 0 == len(handlers) {
		return next.state.reject
	}

	handler := handlers[0]

	return func(reason error) {
		settle(next, func() (U, error) {
			return handler(reason)
		})
	}
}

// liftVoid adapts optional void rejection handlers to the value-returning
// shape Then expects.
func liftVoid(handlers []func(reason error) error) []func(reason error) (tuple.Unit, error) {
	if 0 == len(handlers) {
		return nil
	}

	handler := handlers[0]

	return []func(reason error) (tuple.Unit, error){
		func(reason error) (tuple.Unit, error) {
			return tuple.Unit{}, handler(reason)
		},
	}
}

// protect invokes handler, converting a panic into an error.
func protect[U any](handler func() (U, error)) (value U, err error) {
	defer func() {
		if v := recover(); nil != v {
			err = capturedPanic(v)
		}
	}()

	return handler()
}

// guard runs callback, converting a panic into an error.
func guard(callback func()) (err error) {
	defer func() {
		if v := recover(); nil != v {
			err = capturedPanic(v)
		}
	}()

	callback()

	return nil
}
