package r1cs

import (
	"testing"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

func TestVariableString(t *testing.T) {
	cases := []struct {
		v    Variable
		want string
	}{
		{multiplierLeft(2), "MultiplierLeft(2)"},
		{multiplierRight(3), "MultiplierRight(3)"},
		{multiplierOutput(0), "MultiplierOutput(0)"},
		{Committed(5), "Committed(5)"},
		{One, "One"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestAllocatePairsIntoOneGate(t *testing.T) {
	v := &Verifier{}

	l := v.Allocate(curve.ZeroScalar())
	if v.numVars != 1 {
		t.Fatalf("first Allocate should reserve one gate, numVars = %d", v.numVars)
	}
	if l != multiplierLeft(0) {
		t.Errorf("first Allocate = %v, want MultiplierLeft(0)", l)
	}

	r := v.Allocate(curve.ZeroScalar())
	if v.numVars != 1 {
		t.Fatalf("second Allocate should not reserve a new gate, numVars = %d", v.numVars)
	}
	if r != multiplierRight(0) {
		t.Errorf("second Allocate = %v, want MultiplierRight(0)", r)
	}

	// A third call starts a fresh gate.
	l2 := v.Allocate(curve.ZeroScalar())
	if v.numVars != 2 {
		t.Fatalf("third Allocate should reserve a second gate, numVars = %d", v.numVars)
	}
	if l2 != multiplierLeft(1) {
		t.Errorf("third Allocate = %v, want MultiplierLeft(1)", l2)
	}
}

func TestAllocateMultiplierIsUnconstrained(t *testing.T) {
	v := &Verifier{}
	l, r, o := v.AllocateMultiplier([2]curve.Scalar{})
	if l != multiplierLeft(0) || r != multiplierRight(0) || o != multiplierOutput(0) {
		t.Errorf("AllocateMultiplier wires = (%v, %v, %v)", l, r, o)
	}
	if len(v.constraints) != 0 {
		t.Errorf("AllocateMultiplier must not push any constraint, got %d", len(v.constraints))
	}
}

func TestMultiplyPushesTwoConstraints(t *testing.T) {
	v := &Verifier{}
	lc := LC(Committed(0), curve.OneScalar())
	l, r, o := v.Multiply(lc, lc)
	_ = o
	if len(v.constraints) != 2 {
		t.Fatalf("Multiply should push 2 constraints, got %d", len(v.constraints))
	}
	if l != multiplierLeft(0) || r != multiplierRight(0) {
		t.Errorf("Multiply wires = (%v, %v)", l, r)
	}
}
