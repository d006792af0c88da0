// Package msm assembles and evaluates the single multi-scalar
// multiplication that both single-proof and batch verification reduce
// to, letting the two verifiers share one accumulation path.
package msm

import "github.com/FindoraNetwork/bulletproofs-bs257/curve"

// Builder accumulates (scalar, point) pairs for one multi-scalar
// multiplication. Its zero value is ready to use.
type Builder struct {
	scalars []curve.Scalar
	points  []curve.Element
}

// Add appends a single (scalar, point) pair.
func (b *Builder) Add(s curve.Scalar, p curve.Element) {
	b.scalars = append(b.scalars, s)
	b.points = append(b.points, p)
}

// AddAll appends parallel slices of scalars and points. Panics if the
// slices' lengths differ, since that always indicates a caller bug in
// how the canonical scalar/generator ordering was assembled.
func (b *Builder) AddAll(scalars []curve.Scalar, points []curve.Element) {
	if len(scalars) != len(points) {
		panic("msm: AddAll called with mismatched scalar/point slice lengths")
	}
	b.scalars = append(b.scalars, scalars...)
	b.points = append(b.points, points...)
}

// Merge appends every pair accumulated in other to b, letting callers
// assemble an MSM's shared and per-instance portions independently (as
// batch verification does) before evaluating a single combined sum.
func (b *Builder) Merge(other *Builder) {
	b.scalars = append(b.scalars, other.scalars...)
	b.points = append(b.points, other.points...)
}

// Evaluate computes the accumulated multi-scalar multiplication.
func (b *Builder) Evaluate() (curve.Element, error) {
	return curve.MultiScalarMul(b.scalars, b.points)
}

// EvaluateIsIdentity computes the accumulated MSM and reports whether it
// equals the group identity, the acceptance condition for both
// single-proof and batch verification.
func (b *Builder) EvaluateIsIdentity() (bool, error) {
	r, err := b.Evaluate()
	if err != nil {
		return false, err
	}
	return r.IsIdentity(), nil
}
