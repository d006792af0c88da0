package r1cs

import (
	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/msm"
)

// Verify consumes v: it runs the verification-scalars algorithm, builds
// the generator vector in the same canonical order, and runs one MSM.
// The proof is accepted iff the MSM evaluates to the group identity; any
// mismatch surfaces as ErrVerification.
func (v *Verifier) Verify(proof *Proof, pcGens generators.PedersenGens, bpGens *generators.BulletproofGens) error {
	scalars, vPoints, err := v.VerificationScalars(proof, bpGens)
	if err != nil {
		return err
	}

	gGens, err := bpGens.G(scalars.PaddedN)
	if err != nil {
		return wrapVerification("bulletproof G generators", err)
	}
	hGens, err := bpGens.H(scalars.PaddedN)
	if err != nil {
		return wrapVerification("bulletproof H generators", err)
	}

	var b msm.Builder
	b.Add(scalars.B, pcGens.B)
	b.Add(scalars.BBlinding, pcGens.BBlinding)
	b.AddAll(scalars.G, gGens)
	b.AddAll(scalars.H, hGens)
	b.AddAll(scalars.Circuit[:], []curve.Element{
		proof.AI1, proof.AO1, proof.S1, proof.AI2, proof.AO2, proof.S2,
	})
	b.AddAll(scalars.V, vPoints)
	b.AddAll(scalars.T[:], []curve.Element{
		proof.T1, proof.T3, proof.T4, proof.T5, proof.T6,
	})
	b.AddAll(scalars.USq, proof.IPP.LVec)
	b.AddAll(scalars.UInvSq, proof.IPP.RVec)

	ok, err := b.EvaluateIsIdentity()
	if err != nil {
		return wrapVerification("msm", err)
	}
	if !ok {
		return ErrVerification
	}
	return nil
}
