// Package ipp implements the verifier side of the inner-product-proof
// sub-protocol as the black box the R1CS verifier treats it as: given the
// current transcript and a padded length, it returns the challenge-derived
// coefficient vectors (u^2, u^-2, s) the caller folds into its own
// multi-scalar multiplication, rather than performing any group
// arithmetic itself.
package ipp

import (
	"fmt"
	"math/bits"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/transcript"
)

// Proof is the inner-product proof embedded in an R1CS proof: log2(n)
// rounds of (L,R) commitments plus the terminal scalars a, b.
type Proof struct {
	LVec []curve.Element
	RVec []curve.Element
	A    curve.Scalar
	B    curve.Scalar
}

// VerificationScalars runs the log2(paddedN) challenge rounds of the
// inner-product argument against tr (advancing it with L/R appends and u
// challenge draws), then derives the (u^2, u^-2, s) coefficient vectors
// the caller needs to fold the IPP into its own MSM.
func VerificationScalars(tr *transcript.Transcript, paddedN int, proof *Proof) (uSq, uInvSq, s []curve.Scalar, err error) {
	lgN := len(proof.LVec)
	if len(proof.RVec) != lgN {
		return nil, nil, nil, fmt.Errorf("ipp: mismatched L/R vector lengths %d != %d", lgN, len(proof.RVec))
	}
	if paddedN == 0 || (paddedN&(paddedN-1)) != 0 {
		return nil, nil, nil, fmt.Errorf("ipp: padded_n %d is not a power of two", paddedN)
	}
	if bits.Len(uint(paddedN))-1 != lgN {
		return nil, nil, nil, fmt.Errorf("ipp: proof has %d rounds, expected log2(%d)=%d", lgN, paddedN, bits.Len(uint(paddedN))-1)
	}

	challenges := make([]curve.Scalar, lgN)
	for i := 0; i < lgN; i++ {
		if err := tr.AppendPoint("L", proof.LVec[i], true); err != nil {
			return nil, nil, nil, fmt.Errorf("ipp: round %d: %w", i, err)
		}
		if err := tr.AppendPoint("R", proof.RVec[i], true); err != nil {
			return nil, nil, nil, fmt.Errorf("ipp: round %d: %w", i, err)
		}
		challenges[i] = tr.ChallengeScalar("u")
	}

	challengesInv := make([]curve.Scalar, lgN)
	allInv := curve.OneScalar()
	for i, c := range challenges {
		challengesInv[i] = c.Inverse()
		allInv = allInv.Mul(challengesInv[i])
	}

	uSq = make([]curve.Scalar, lgN)
	uInvSq = make([]curve.Scalar, lgN)
	for i := 0; i < lgN; i++ {
		uSq[i] = challenges[i].Mul(challenges[i])
		uInvSq[i] = challengesInv[i].Mul(challengesInv[i])
	}

	s = make([]curve.Scalar, paddedN)
	s[0] = allInv
	for i := 1; i < paddedN; i++ {
		lgI := bits.Len(uint(i)) - 1
		k := 1 << uint(lgI)
		uLgISq := uSq[(lgN-1)-lgI]
		s[i] = s[i-k].Mul(uLgISq)
	}

	return uSq, uInvSq, s, nil
}
