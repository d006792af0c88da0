// Package fixtures implements a minimal, test-only R1CS Bulletproofs
// prover: just enough to produce proofs the r1cs verifier accepts for a
// handful of fixed small circuits (a single multiplier gate, and a
// single phase-2 randomized linear constraint over one phase-2
// multiplier gate). It is never exported as a public "Prove" API, but
// completeness tests need real satisfying proofs to exercise, not just
// hand-built rejection cases.
package fixtures

import (
	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/transcript"
)

// ipProve runs the standard recursive halving inner-product argument the
// ipp package's VerificationScalars checks: at each round it commits
// L_k/R_k, draws a challenge from tr under label "u" (matching
// ipp.VerificationScalars exactly), and folds a, b, G, H by x/x^-1. gFactor
// and hFactor weight the starting generators only (the standard
// generators-with-factors trick): after round 0 the fold itself carries
// the weighting forward, so the verifier's plain combinatorial s vector
// (computed from challenges alone, with no knowledge of the factors)
// still lines up once the r1cs verifier applies u_or_1/y_inv weighting
// on the outside, exactly as scalars.go's g_scalars/h_scalars do.
func ipProve(tr *transcript.Transcript, a, b []curve.Scalar, g, h []curve.Element, gFactor, hFactor []curve.Scalar) (lVec, rVec []curve.Element, aOut, bOut curve.Scalar) {
	n := len(a)

	ge := make([]curve.Element, n)
	he := make([]curve.Element, n)
	for i := 0; i < n; i++ {
		ge[i] = g[i].Mul(gFactor[i])
		he[i] = h[i].Mul(hFactor[i])
	}

	for n > 1 {
		np := n / 2

		l := msm(a[:np], ge[np:]).Add(msm(b[np:], he[:np]))
		r := msm(a[np:], ge[:np]).Add(msm(b[:np], he[np:]))

		tr.AppendPoint("L", l, true)
		tr.AppendPoint("R", r, true)
		x := tr.ChallengeScalar("u")
		xInv := x.Inverse()

		gp := make([]curve.Element, np)
		hp := make([]curve.Element, np)
		ap := make([]curve.Scalar, np)
		bp := make([]curve.Scalar, np)
		for i := 0; i < np; i++ {
			gp[i] = ge[i].Mul(xInv).Add(ge[np+i].Mul(x))
			hp[i] = he[i].Mul(x).Add(he[np+i].Mul(xInv))
			ap[i] = a[i].Mul(x).Add(a[np+i].Mul(xInv))
			bp[i] = b[i].Mul(xInv).Add(b[np+i].Mul(x))
		}

		lVec = append(lVec, l)
		rVec = append(rVec, r)
		ge, he, a, b, n = gp, hp, ap, bp, np
	}

	return lVec, rVec, a[0], b[0]
}

func msm(scalars []curve.Scalar, points []curve.Element) curve.Element {
	acc := curve.Identity()
	for i := range scalars {
		acc = acc.Add(points[i].Mul(scalars[i]))
	}
	return acc
}
