// Package tuple provides small fixed-arity heterogeneous value types.
// They let a single-valued promise carry zero, two, or three values as
// one, to be spread back into positional arguments by the promise
// package's Then2 and Then3.
package tuple

// Unit is the empty tuple: the value type of a promise that carries no
// values.
type Unit struct{}

// Pair is an ordered pair of values of independent types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf returns the pair (first, second).
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{
		First:  first,
		Second: second,
	}
}

// Values returns both elements in order.
func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}

// Triple is an ordered triple of values of independent types.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf returns the triple (first, second, third).
func TripleOf[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  first,
		Second: second,
		Third:  third,
	}
}

// Values returns all three elements in order.
func (t Triple[A, B, C]) Values() (A, B, C) {
	return t.First, t.Second, t.Third
}
