package fixtures

import (
	"io"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/r1cs"
)

// MultiplicationGadget builds a satisfying proof for the single-gate
// circuit described in r1cs's multiplication-gadget test scenario:
// commit a, b, a*b as V0, V1, V2, allocate one multiplier gate and
// constrain its wires so that V0 == l, V1 == r, o == V2 (i.e. assert
// a*b == c via the gate's own internal multiplication). A caller
// exercising the real r1cs.Verifier must replay the identical sequence
// of Commit/Multiply/Constrain calls, in this order, over a fresh
// transcript constructed the same way buildCircuitProof's transcript is
// (see newProverTranscript).
func MultiplicationGadget(rnd io.Reader, pcGens generators.PedersenGens, bpGens *generators.BulletproofGens, a, b curve.Scalar) (*r1cs.Proof, []curve.Element, error) {
	c := a.Mul(b)

	blindA := randomScalar(rnd)
	blindB := randomScalar(rnd)
	blindC := randomScalar(rnd)
	v0 := pcGens.Commit(a, blindA)
	v1 := pcGens.Commit(b, blindB)
	v2 := pcGens.Commit(c, blindC)
	vPoints := []curve.Element{v0, v1, v2}

	gate := gateWitness{
		aL: a, aR: b, aO: c,
		sL: randomScalar(rnd), sR: randomScalar(rnd),
		weights: multiplicationGadgetWeights,
	}

	result, _, err := buildCircuitProof(rnd, pcGens, bpGens, vPoints, gate, nil)
	if err != nil {
		return nil, nil, err
	}

	return &r1cs.Proof{
		AI1: result.AI1, AO1: result.AO1, S1: result.S1,
		AI2: result.AI2, AO2: result.AO2, S2: result.S2,
		T1: result.T1, T3: result.T3, T4: result.T4, T5: result.T5, T6: result.T6,
		TX: result.TX, TXBlinding: result.TXBlinding, EBlinding: result.EBlinding,
		IPP: result.IPP,
	}, vPoints, nil
}

// multiplicationGadgetWeights is flatten(z)'s wL, wR, wO at the gate's
// sole index for the constraint list
// [V0 - l = 0, V1 - r = 0, o - V2 = 0] pushed in that order (the first
// two by Verifier.Multiply, the third by the caller's own Constrain):
// wL = -z (from the z-weighted "-l" term), wR = -z^2 (from "-r" weighted
// by z^2), wO = z^3 (from "o" weighted by z^3).
func multiplicationGadgetWeights(z curve.Scalar) (wL, wR, wO curve.Scalar) {
	z2 := z.Mul(z)
	z3 := z2.Mul(z)
	return z.Neg(), z2.Neg(), z3
}
