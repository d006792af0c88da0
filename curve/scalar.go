// Package curve wraps the Ristretto255 prime-order group for the scalar
// and group-element arithmetic the verifier core needs. It offers a
// single concrete backend since the R1CS verifier is specified over one
// prime-order group.
package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

// Scalar is a field element of the Ristretto255 scalar field.
type Scalar struct {
	v circl.Scalar
}

func newScalar() circl.Scalar {
	return circl.Ristretto255.NewScalar()
}

// inner returns a's underlying circl scalar, treating the Go zero value
// of Scalar (as produced by make([]Scalar, n) or a bare var declaration)
// as the additive identity rather than a nil interface. This keeps
// slices of Scalar safe to partially initialize, matching how a plain
// []int or []big.Int would behave.
func (a Scalar) inner() circl.Scalar {
	if a.v == nil {
		return newScalar()
	}
	return a.v
}

// ZeroScalar returns the additive identity.
func ZeroScalar() Scalar {
	return Scalar{v: newScalar()}
}

// OneScalar returns the multiplicative identity.
func OneScalar() Scalar {
	s := newScalar()
	s.SetUint64(1)
	return Scalar{v: s}
}

// ScalarFromUint64 lifts a small integer into the scalar field.
func ScalarFromUint64(x uint64) Scalar {
	s := newScalar()
	s.SetUint64(x)
	return Scalar{v: s}
}

// ScalarFromBigInt reduces x modulo the scalar field order.
func ScalarFromBigInt(x *big.Int) Scalar {
	s := newScalar()
	s.SetBigInt(x)
	return Scalar{v: s}
}

// RandomScalar draws a uniformly random non-zero scalar from rnd.
func RandomScalar(rnd io.Reader) (Scalar, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	s, err := circl.Ristretto255.RandomNonZeroScalar(rnd)
	if err != nil {
		return Scalar{}, fmt.Errorf("curve: draw random scalar: %w", err)
	}
	return Scalar{v: s}, nil
}

// Add returns a+b.
func (a Scalar) Add(b Scalar) Scalar {
	r := newScalar()
	r.Add(a.inner(), b.inner())
	return Scalar{v: r}
}

// Sub returns a-b.
func (a Scalar) Sub(b Scalar) Scalar {
	r := newScalar()
	r.Sub(a.inner(), b.inner())
	return Scalar{v: r}
}

// Mul returns a*b.
func (a Scalar) Mul(b Scalar) Scalar {
	r := newScalar()
	r.Mul(a.inner(), b.inner())
	return Scalar{v: r}
}

// Neg returns -a.
func (a Scalar) Neg() Scalar {
	r := newScalar()
	r.Neg(a.inner())
	return Scalar{v: r}
}

// Inverse returns a^-1. The scalar must be non-zero.
func (a Scalar) Inverse() Scalar {
	r := newScalar()
	r.Inv(a.inner())
	return Scalar{v: r}
}

// IsZero reports whether a is the additive identity.
func (a Scalar) IsZero() bool {
	return a.inner().IsZero()
}

// Equal reports whether a and b represent the same field element.
func (a Scalar) Equal(b Scalar) bool {
	return a.inner().IsEqual(b.inner())
}

// Bytes returns the canonical little-endian encoding of a.
func (a Scalar) Bytes() []byte {
	b, _ := a.inner().MarshalBinary()
	return b
}

// SetScalarBytes decodes the canonical encoding produced by Bytes.
func SetScalarBytes(b []byte) (Scalar, error) {
	s := newScalar()
	if err := s.UnmarshalBinary(b); err != nil {
		return Scalar{}, fmt.Errorf("curve: decode scalar: %w", err)
	}
	return Scalar{v: s}, nil
}

// Zeroize overwrites every scalar in s with the zero element. It is used by
// ancillary utilities that hold secret field elements transiently (see
// internal/fixtures), never by the verifier core itself, which holds no
// secrets.
func Zeroize(s []Scalar) {
	zero := ZeroScalar()
	for i := range s {
		s[i] = zero
	}
}
