package curve

import (
	"fmt"

	circl "github.com/cloudflare/circl/group"
)

// Element is a point on the Ristretto255 group.
type Element struct {
	v circl.Element
}

func newElement() circl.Element {
	return circl.Ristretto255.NewElement()
}

// inner returns a's underlying circl element, treating the Go zero value
// of Element as the group identity rather than a nil interface (see
// Scalar.inner for the same rationale).
func (a Element) inner() circl.Element {
	if a.v == nil {
		return newElement()
	}
	return a.v
}

// Identity returns the group identity element.
func Identity() Element {
	return Element{v: newElement()}
}

// Generator returns the group's distinguished base point.
func Generator() Element {
	return Element{v: circl.Ristretto255.Generator()}
}

// HashToElement derives a group element deterministically from label and
// index, used to build generator vectors without a trusted setup.
func HashToElement(label string, index int) Element {
	dst := []byte("bulletproofs-r1cs-bs257")
	msg := []byte(fmt.Sprintf("%s-%d", label, index))
	return Element{v: circl.Ristretto255.HashToElement(msg, dst)}
}

// Add returns a+b.
func (a Element) Add(b Element) Element {
	r := newElement()
	r.Add(a.inner(), b.inner())
	return Element{v: r}
}

// Sub returns a-b.
func (a Element) Sub(b Element) Element {
	r := newElement()
	nb := newElement()
	nb.Neg(b.inner())
	r.Add(a.inner(), nb)
	return Element{v: r}
}

// Neg returns -a.
func (a Element) Neg() Element {
	r := newElement()
	r.Neg(a.inner())
	return Element{v: r}
}

// Mul returns s*a.
func (a Element) Mul(s Scalar) Element {
	r := newElement()
	r.Mul(a.inner(), s.inner())
	return Element{v: r}
}

// BaseMul returns s*Generator().
func BaseMul(s Scalar) Element {
	r := newElement()
	r.MulGen(s.inner())
	return Element{v: r}
}

// IsIdentity reports whether a is the group identity.
func (a Element) IsIdentity() bool {
	return a.inner().IsIdentity()
}

// Equal reports whether a and b are the same point.
func (a Element) Equal(b Element) bool {
	return a.inner().IsEqual(b.inner())
}

// Bytes returns the canonical compressed encoding of a.
func (a Element) Bytes() []byte {
	b, _ := a.inner().MarshalBinary()
	return b
}

// SetElementBytes decodes the canonical encoding produced by Bytes.
func SetElementBytes(b []byte) (Element, error) {
	e := newElement()
	if err := e.UnmarshalBinary(b); err != nil {
		return Element{}, fmt.Errorf("curve: decode element: %w", err)
	}
	return Element{v: e}, nil
}

// MultiScalarMul computes the sum of scalars[i]*points[i]. It is a direct
// loop rather than a Pippenger-style windowed implementation: the
// verifier core's MSMs are dominated by transcript and scalar-vector
// work at the sizes this module targets.
func MultiScalarMul(scalars []Scalar, points []Element) (Element, error) {
	if len(scalars) != len(points) {
		return Element{}, fmt.Errorf("curve: multi-scalar mul: length mismatch %d != %d", len(scalars), len(points))
	}
	acc := Identity()
	for i := range scalars {
		acc = acc.Add(points[i].Mul(scalars[i]))
	}
	return acc, nil
}
