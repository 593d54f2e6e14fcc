package promise

type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

type (
	// ResolveFunc fulfills the promise it was created for with the given
	// value. It may be called from any goroutine, at most once, and only
	// if the matching RejectFunc is never called.
	ResolveFunc[T any] func(value T)

	// RejectFunc rejects the promise it was created for with the given
	// reason. The same at-most-once contract as ResolveFunc applies.
	RejectFunc func(reason error)

	// Resolver is the function passed to New. It receives the resolve and
	// reject capabilities of the promise under construction and may call
	// zero or one of them, synchronously or at any later time.
	Resolver[T any] func(resolve ResolveFunc[T], reject RejectFunc)
)
