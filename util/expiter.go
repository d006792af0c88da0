package util

import "github.com/FindoraNetwork/bulletproofs-bs257/curve"

// ExpIterator lazily produces successive powers of a scalar x: x^0, x^1,
// x^2, .... It builds powers-of-a-challenge vectors (e.g. the y-inverse
// vector, via Powers) without materializing an intermediate []Scalar up
// front. Constraint flattening keeps its own running power of z and does
// not use it.
type ExpIterator struct {
	next curve.Scalar
	x    curve.Scalar
}

// NewExpIterator starts an iterator at x^0 = 1.
func NewExpIterator(x curve.Scalar) *ExpIterator {
	return &ExpIterator{next: curve.OneScalar(), x: x}
}

// Next returns the current power and advances the iterator.
func (it *ExpIterator) Next() curve.Scalar {
	cur := it.next
	it.next = it.next.Mul(it.x)
	return cur
}

// Powers materializes the first n powers of x, starting at x^0.
func Powers(x curve.Scalar, n int) []curve.Scalar {
	out := make([]curve.Scalar, n)
	it := NewExpIterator(x)
	for i := 0; i < n; i++ {
		out[i] = it.Next()
	}
	return out
}

// Zeroize overwrites every scalar in s with the additive identity. Used
// by ancillary utilities that hold secret field elements transiently;
// the verifier core itself holds no secrets (see internal/fixtures'
// test-only prover, which zeroizes its blinding scalars on release).
func Zeroize(s []curve.Scalar) {
	curve.Zeroize(s)
}
