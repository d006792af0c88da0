// Package generators provides the Pedersen and Bulletproof generator
// tables the verifier core treats as an external collaborator. It
// generalizes the fixed-length generator vectors built ad hoc in
// bulletproofs.Setup/BulletProofSetupParams into an arbitrary-capacity,
// deterministically derived table.
package generators

import (
	"fmt"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

// PedersenGens holds the two bases used for value commitments:
// commit(v, b) = v*B + b*BBlinding.
type PedersenGens struct {
	B         curve.Element
	BBlinding curve.Element
}

// NewPedersenGens builds the canonical Pedersen generator pair. B is the
// group's standard generator; BBlinding is derived deterministically so
// no party can know its discrete log relative to B.
func NewPedersenGens() PedersenGens {
	return PedersenGens{
		B:         curve.Generator(),
		BBlinding: curve.HashToElement("PedersenGens.B_blinding", 0),
	}
}

// Commit returns v*B + b*BBlinding.
func (pg PedersenGens) Commit(v, b curve.Scalar) curve.Element {
	return pg.B.Mul(v).Add(pg.BBlinding.Mul(b))
}

// BulletproofGens derives the G(k) and H(k) generator vectors used by the
// inner-product argument, up to a fixed capacity fixed at construction
// time. Generators are derived by hashing a distinct per-index message
// (label and index) to the group rather than stored as a literal table or
// scaled from a single seed point, so no discrete-log relation between
// the resulting generators is derivable by the caller.
type BulletproofGens struct {
	capacity int
	g        []curve.Element
	h        []curve.Element
}

// NewBulletproofGens derives a generator table with room for capacity
// multiplier gates.
func NewBulletproofGens(capacity int) *BulletproofGens {
	bg := &BulletproofGens{capacity: capacity}
	bg.g = make([]curve.Element, capacity)
	bg.h = make([]curve.Element, capacity)
	for i := 0; i < capacity; i++ {
		bg.g[i] = curve.HashToElement("BulletproofGens.G", i)
		bg.h[i] = curve.HashToElement("BulletproofGens.H", i)
	}
	return bg
}

// Capacity reports the maximum number of multiplier gates this table
// supports.
func (bg *BulletproofGens) Capacity() int {
	return bg.capacity
}

// G returns the first k G-generators.
func (bg *BulletproofGens) G(k int) ([]curve.Element, error) {
	if k > bg.capacity {
		return nil, fmt.Errorf("generators: requested %d G generators, capacity is %d", k, bg.capacity)
	}
	return bg.g[:k], nil
}

// H returns the first k H-generators.
func (bg *BulletproofGens) H(k int) ([]curve.Element, error) {
	if k > bg.capacity {
		return nil, fmt.Errorf("generators: requested %d H generators, capacity is %d", k, bg.capacity)
	}
	return bg.h[:k], nil
}
