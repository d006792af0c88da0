package fixtures

import (
	"io"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/r1cs"
	"github.com/FindoraNetwork/bulletproofs-bs257/transcript"
)

// RandomizedGadget builds a satisfying proof for r1cs's randomized-
// constraint test scenario: commit v0 as V0, register a single deferred
// constraint that draws a challenge e and allocates a phase-2 multiplier
// gate whose left wire is asserted to equal -e*V0 (i.e. the constraint
// e*V0 + l == 0), with the gate's right and output wires left otherwise
// unconstrained (so aR = aO = 0 satisfies the gate's own
// multiplication trivially). A caller exercising the real r1cs.Verifier
// must register the equivalent DeferredConstraint, via
// SpecifyRandomizedConstraints, over a fresh transcript built the same
// way buildCircuitProof's is.
//
// The left wire's value can only be fixed once e is known, which is why
// this is a phase-2 (not phase-1) gate: phase-1 commitments are bound
// into the transcript before any challenge is drawn, so a value that
// depends on a challenge cannot be committed there without breaking
// Fiat-Shamir causality. Allocating the wire in phase 2, inside the very
// callback that draws e, sidesteps that: the wire's value is pure
// witness, never itself committed to the transcript ahead of e.
func RandomizedGadget(rnd io.Reader, pcGens generators.PedersenGens, bpGens *generators.BulletproofGens, v0 curve.Scalar) (*r1cs.Proof, []curve.Element, error) {
	blind0 := randomScalar(rnd)
	v0Point := pcGens.Commit(v0, blind0)
	vPoints := []curve.Element{v0Point}

	gate := gateWitness{
		phase2:  true,
		sL:      randomScalar(rnd),
		sR:      randomScalar(rnd),
		weights: randomizedGadgetWeights,
	}

	runDeferred := func(tr *transcript.Transcript) curve.Scalar {
		e := tr.ChallengeScalar("e")
		return e.Mul(v0).Neg()
	}

	result, _, err := buildCircuitProof(rnd, pcGens, bpGens, vPoints, gate, runDeferred)
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

// randomizedGadgetWeights is flatten(z)'s wL, wR, wO at the gate's sole
// index for the single constraint "e*V0 + l = 0" (the only constraint
// in this circuit, so it carries weight z^1): wL = z (from the z-
// weighted "+l" term), wR = wO = 0 (the gate's right and output wires
// never appear in any constraint).
func randomizedGadgetWeights(z curve.Scalar) (wL, wR, wO curve.Scalar) {
	return z, curve.ZeroScalar(), curve.ZeroScalar()
}
