package r1cs

import (
	"testing"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

func TestFlattenWeightsByPowersOfZ(t *testing.T) {
	v := &Verifier{numVars: 1, v: []curve.Element{curve.Identity(), curve.Identity()}}

	// Constraint 1 (weight z^1): 2*MultiplierLeft(0) + Committed(0) + 3*One = 0.
	c1 := LC(multiplierLeft(0), curve.ScalarFromUint64(2)).
		Add(Committed(0), curve.OneScalar()).
		Add(One, curve.ScalarFromUint64(3))
	// Constraint 2 (weight z^2): MultiplierRight(0) + Committed(1) = 0.
	c2 := LC(multiplierRight(0), curve.OneScalar()).Add(Committed(1), curve.OneScalar())
	v.constraints = []LinearCombination{c1, c2}

	z := curve.ScalarFromUint64(5)
	f := v.flatten(z)

	z2 := z.Mul(z)
	if !f.wL[0].Equal(z.Mul(curve.ScalarFromUint64(2))) {
		t.Errorf("wL[0] = %v, want 2z", f.wL[0])
	}
	if !f.wR[0].Equal(z2) {
		t.Errorf("wR[0] = %v, want z^2", f.wR[0])
	}
	if !f.wO[0].IsZero() {
		t.Errorf("wO[0] = %v, want 0", f.wO[0])
	}
	// Committed and One terms flip sign relative to their raw coefficient.
	if !f.wV[0].Equal(z.Neg()) {
		t.Errorf("wV[0] = %v, want -z", f.wV[0])
	}
	if !f.wV[1].Equal(z2.Neg()) {
		t.Errorf("wV[1] = %v, want -z^2", f.wV[1])
	}
	if !f.wc.Equal(z.Mul(curve.ScalarFromUint64(3)).Neg()) {
		t.Errorf("wc = %v, want -3z", f.wc)
	}
}

func TestFlattenSumsDuplicateVariables(t *testing.T) {
	v := &Verifier{numVars: 1}
	// The same wire appears twice in one constraint; flatten must sum the
	// weighted coefficients rather than overwrite.
	c := LC(multiplierLeft(0), curve.ScalarFromUint64(2)).Add(multiplierLeft(0), curve.ScalarFromUint64(3))
	v.constraints = []LinearCombination{c}

	z := curve.ScalarFromUint64(7)
	f := v.flatten(z)

	want := z.Mul(curve.ScalarFromUint64(5))
	if !f.wL[0].Equal(want) {
		t.Errorf("wL[0] = %v, want 5z", f.wL[0])
	}
}

func TestFlattenEmptyConstraintsIsZero(t *testing.T) {
	v := &Verifier{numVars: 2, v: nil}
	f := v.flatten(curve.ScalarFromUint64(9))
	for i, s := range f.wL {
		if !s.IsZero() {
			t.Errorf("wL[%d] = %v, want 0", i, s)
		}
	}
	if !f.wc.IsZero() {
		t.Errorf("wc = %v, want 0", f.wc)
	}
}
