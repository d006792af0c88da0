package r1cs

import (
	"io"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/msm"
)

// BatchInstance pairs one verifier with the proof it should check. The
// verifier is consumed (via VerificationScalars) exactly once per
// instance, same as a single-proof Verify call.
type BatchInstance struct {
	Verifier *Verifier
	Proof    *Proof
}

// scale multiplies every element of s by alpha, returning a fresh slice.
func scale(alpha curve.Scalar, s []curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, len(s))
	for i, x := range s {
		out[i] = alpha.Mul(x)
	}
	return out
}

// BatchVerify folds N independent verifications into one MSM via random
// linear combination, reusing the shared generator bases G(0..maxPaddedN)
// and H(0..maxPaddedN) across all instances. Shorter instances occupy the
// low-index end of the shared G/H block (left-aligned, not right-aligned).
//
// Verification-scalar construction runs instance by instance, in order;
// the first instance whose scalar vector cannot be built aborts the whole
// batch with its error. Once every instance's scalars are folded into the
// combined accumulator, a single MSM decides the batch: a non-identity
// result is reported as a bare ErrVerification without naming the
// offending instance, which is the security property random-linear-
// combination batching is meant to provide.
func BatchVerify(instances []BatchInstance, pcGens generators.PedersenGens, bpGens *generators.BulletproofGens, rnd io.Reader) error {
	type scaled struct {
		proof  *Proof
		vPts   []curve.Element
		scalar *ScalarVector
	}

	built := make([]scaled, len(instances))
	maxPaddedN := 0
	for i, inst := range instances {
		s, vPts, err := inst.Verifier.VerificationScalars(inst.Proof, bpGens)
		if err != nil {
			return err
		}
		built[i] = scaled{proof: inst.Proof, vPts: vPts, scalar: s}
		if s.PaddedN > maxPaddedN {
			maxPaddedN = s.PaddedN
		}
	}

	gGens, err := bpGens.G(maxPaddedN)
	if err != nil {
		return wrapVerification("bulletproof G generators", err)
	}
	hGens, err := bpGens.H(maxPaddedN)
	if err != nil {
		return wrapVerification("bulletproof H generators", err)
	}

	sharedG := make([]curve.Scalar, maxPaddedN)
	sharedH := make([]curve.Scalar, maxPaddedN)
	for i := range sharedG {
		sharedG[i] = curve.ZeroScalar()
		sharedH[i] = curve.ZeroScalar()
	}
	bScalar := curve.ZeroScalar()
	bBlindingScalar := curve.ZeroScalar()

	var combined msm.Builder

	for _, inst := range built {
		alpha, err := curve.RandomScalar(rnd)
		if err != nil {
			return err
		}
		s := inst.scalar

		bScalar = bScalar.Add(alpha.Mul(s.B))
		bBlindingScalar = bBlindingScalar.Add(alpha.Mul(s.BBlinding))

		for i := 0; i < s.PaddedN; i++ {
			sharedG[i] = sharedG[i].Add(alpha.Mul(s.G[i]))
			sharedH[i] = sharedH[i].Add(alpha.Mul(s.H[i]))
		}

		// Per-instance tail: A_*/S_* coefficients, wV*r*x^2 entries, T
		// scalars, and the IPP's u^2/u^-2 vectors, each paired with that
		// instance's own proof elements.
		combined.AddAll(scale(alpha, s.Circuit[:]), []curve.Element{
			inst.proof.AI1, inst.proof.AO1, inst.proof.S1,
			inst.proof.AI2, inst.proof.AO2, inst.proof.S2,
		})
		combined.AddAll(scale(alpha, s.V), inst.vPts)
		combined.AddAll(scale(alpha, s.T[:]), []curve.Element{
			inst.proof.T1, inst.proof.T3, inst.proof.T4, inst.proof.T5, inst.proof.T6,
		})
		combined.AddAll(scale(alpha, s.USq), inst.proof.IPP.LVec)
		combined.AddAll(scale(alpha, s.UInvSq), inst.proof.IPP.RVec)
	}

	// Shared slots go first: B, B_blinding, then the G/H blocks aligned
	// at the start of the shared generator table.
	var full msm.Builder
	full.Add(bScalar, pcGens.B)
	full.Add(bBlindingScalar, pcGens.BBlinding)
	full.AddAll(sharedG, gGens)
	full.AddAll(sharedH, hGens)

	full.Merge(&combined)

	ok, err := full.EvaluateIsIdentity()
	if err != nil {
		return wrapVerification("batch msm", err)
	}
	if !ok {
		return ErrVerification
	}
	return nil
}
