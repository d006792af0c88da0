package r1cs

import (
	"fmt"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/ipp"
	"github.com/FindoraNetwork/bulletproofs-bs257/util"
)

// ScalarVector is the canonical, order-sensitive output of the
// verification-scalars algorithm: every field-element coefficient of the
// single MSM whose zero result witnesses proof validity, plus the V
// commitments the caller needs to pair them against (V itself is not
// part of the scalar vector proper, but verify/batch verify need it to
// assemble the generator side of the MSM).
type ScalarVector struct {
	// Scalar for PedersenGens.B.
	B curve.Scalar
	// Scalar for PedersenGens.BBlinding.
	BBlinding curve.Scalar
	// Scalars for BulletproofGens.G(padded_n), aligned low-index-first.
	G []curve.Scalar
	// Scalars for BulletproofGens.H(padded_n), aligned low-index-first.
	H []curve.Scalar
	// Scalars for A_I1, A_O1, S1, A_I2, A_O2, S2, in that order.
	Circuit [6]curve.Scalar
	// Scalars for V[i], i.e. wV[i]*r*x^2.
	V []curve.Scalar
	// Scalars for T_1, T_3, T_4, T_5, T_6, in that order.
	T [5]curve.Scalar
	// Scalars for the IPP's L_vec.
	USq []curve.Scalar
	// Scalars for the IPP's R_vec.
	UInvSq []curve.Scalar

	// PaddedN is next_power_of_two(num_vars) at the time these scalars
	// were built; callers need it to know how many of bp_gens' G/H
	// generators to pair G and H against.
	PaddedN int
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// VerificationScalars consumes the verifier, proof and bp_gens, running
// the full 22-step canonical algorithm: it executes the phase-2
// transition, draws every transcript challenge in the normative order,
// invokes the IPP sub-verifier, and assembles the scalar vector. It
// returns the V commitments alongside, since later MSM assembly needs
// them paired with the V scalars this method produces.
func (v *Verifier) VerificationScalars(proof *Proof, bpGens *generators.BulletproofGens) (*ScalarVector, []curve.Element, error) {
	tr := v.transcript

	// Step 1: disambiguate the variable count after streaming commits.
	tr.AppendUint64("m", uint64(len(v.v)))

	// Step 2: phase-1 multiplier count.
	n1 := v.numVars

	// Step 3: validated phase-1 circuit commitments.
	if err := tr.AppendPoint("A_I1", proof.AI1, true); err != nil {
		return nil, nil, wrapVerification("A_I1", err)
	}
	if err := tr.AppendPoint("A_O1", proof.AO1, true); err != nil {
		return nil, nil, wrapVerification("A_O1", err)
	}
	if err := tr.AppendPoint("S1", proof.S1, true); err != nil {
		return nil, nil, wrapVerification("S1", err)
	}

	// Step 4: run phase-2 callbacks.
	if err := v.createRandomizedConstraints(); err != nil {
		var ge GadgetError
		if asGadgetError(err, &ge) {
			return nil, nil, ge
		}
		return nil, nil, wrapVerification("deferred constraint", err)
	}
	n := v.numVars
	paddedN := nextPowerOfTwo(n)
	pad := paddedN - n

	// Step 5: capacity check, before any further challenge draw.
	if bpGens.Capacity() < paddedN {
		return nil, nil, fmt.Errorf("%w: need %d, have %d", ErrInvalidGeneratorsLength, paddedN, bpGens.Capacity())
	}

	// Step 6: unvalidated phase-2 circuit commitments (may be identity).
	if err := tr.AppendPoint("A_I2", proof.AI2, false); err != nil {
		return nil, nil, wrapVerification("A_I2", err)
	}
	if err := tr.AppendPoint("A_O2", proof.AO2, false); err != nil {
		return nil, nil, wrapVerification("A_O2", err)
	}
	if err := tr.AppendPoint("S2", proof.S2, false); err != nil {
		return nil, nil, wrapVerification("S2", err)
	}

	// Step 7.
	y := tr.ChallengeScalar("y")
	z := tr.ChallengeScalar("z")

	// Step 8: validated T-polynomial commitments (T_2 is derivable and
	// omitted by the prover).
	if err := tr.AppendPoint("T_1", proof.T1, true); err != nil {
		return nil, nil, wrapVerification("T_1", err)
	}
	if err := tr.AppendPoint("T_3", proof.T3, true); err != nil {
		return nil, nil, wrapVerification("T_3", err)
	}
	if err := tr.AppendPoint("T_4", proof.T4, true); err != nil {
		return nil, nil, wrapVerification("T_4", err)
	}
	if err := tr.AppendPoint("T_5", proof.T5, true); err != nil {
		return nil, nil, wrapVerification("T_5", err)
	}
	if err := tr.AppendPoint("T_6", proof.T6, true); err != nil {
		return nil, nil, wrapVerification("T_6", err)
	}

	// Step 9.
	u := tr.ChallengeScalar("u")
	x := tr.ChallengeScalar("x")

	// Step 10: revealed scalars.
	tr.AppendScalar("t_x", proof.TX)
	tr.AppendScalar("t_x_blinding", proof.TXBlinding)
	tr.AppendScalar("e_blinding", proof.EBlinding)

	// Step 11.
	w := tr.ChallengeScalar("w")

	// Step 12.
	flat := v.flatten(z)

	// Step 13: IPP sub-verifier black box.
	uSq, uInvSq, s, err := ipp.VerificationScalars(tr, paddedN, &proof.IPP)
	if err != nil {
		return nil, nil, wrapVerification("inner-product proof", err)
	}
	a := proof.IPP.A
	b := proof.IPP.B

	// Step 14.
	yInv := y.Inverse()
	yInvVec := util.Powers(yInv, paddedN)

	// Step 15.
	yNegWR := make([]curve.Scalar, paddedN)
	for i := 0; i < n; i++ {
		yNegWR[i] = flat.wR[i].Mul(yInvVec[i])
	}
	for i := n; i < paddedN; i++ {
		yNegWR[i] = curve.ZeroScalar()
	}

	// Step 16.
	delta := curve.ZeroScalar()
	for i := 0; i < n; i++ {
		delta = delta.Add(yNegWR[i].Mul(flat.wL[i]))
	}

	// Step 17: u_or_1 coefficient, applied inline in steps 18-19.
	uOrOne := func(i int) curve.Scalar {
		if i < n1 {
			return curve.OneScalar()
		}
		return u
	}

	// Step 18.
	gScalars := make([]curve.Scalar, paddedN)
	for i := 0; i < paddedN; i++ {
		gScalars[i] = uOrOne(i).Mul(x.Mul(yNegWR[i]).Sub(a.Mul(s[i])))
	}

	// Step 19: wL, wO right-padded with zeros; s reversed.
	wLPad := make([]curve.Scalar, paddedN)
	wOPad := make([]curve.Scalar, paddedN)
	copy(wLPad, flat.wL)
	copy(wOPad, flat.wO)
	_ = pad

	sRev := make([]curve.Scalar, paddedN)
	for i := 0; i < paddedN; i++ {
		sRev[i] = s[paddedN-1-i]
	}

	hScalars := make([]curve.Scalar, paddedN)
	for i := 0; i < paddedN; i++ {
		inner := x.Mul(wLPad[i]).Add(wOPad[i]).Sub(b.Mul(sRev[i]))
		hScalars[i] = uOrOne(i).Mul(yInvVec[i].Mul(inner).Sub(curve.OneScalar()))
	}

	// Step 20: draw r from a transcript clone so it never advances the
	// shared transcript (independent per batch instance).
	rTranscript := tr.Clone()
	r := rTranscript.ChallengeScalar("r")

	// Step 21.
	xx := x.Mul(x)
	xxx := x.Mul(xx)
	rxx := r.Mul(xx)
	tScalars := [5]curve.Scalar{
		r.Mul(x),
		rxx.Mul(x),
		rxx.Mul(xx),
		rxx.Mul(xxx),
		rxx.Mul(xx).Mul(xx),
	}

	// Step 22: assemble in the canonical order.
	bScalar := w.Mul(a.Mul(b).Neg().Add(proof.TX)).Add(r.Mul(xx.Mul(flat.wc.Add(delta)).Sub(proof.TX)))
	bBlindingScalar := proof.EBlinding.Neg().Sub(r.Mul(proof.TXBlinding))

	circuit := [6]curve.Scalar{x, xx, xxx, u.Mul(x), u.Mul(xx), u.Mul(xxx)}

	vScalars := make([]curve.Scalar, len(flat.wV))
	for i := range flat.wV {
		vScalars[i] = flat.wV[i].Mul(rxx)
	}

	return &ScalarVector{
		B:         bScalar,
		BBlinding: bBlindingScalar,
		G:         gScalars,
		H:         hScalars,
		Circuit:   circuit,
		V:         vScalars,
		T:         tScalars,
		USq:       uSq,
		UInvSq:    uInvSq,
		PaddedN:   paddedN,
	}, v.v, nil
}

func asGadgetError(err error, target *GadgetError) bool {
	ge, ok := err.(GadgetError)
	if ok {
		*target = ge
	}
	return ok
}
