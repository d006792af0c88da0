package fixtures

import (
	"io"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/r1cs"
)

// CommitmentOnly builds a satisfying proof for a circuit with no
// multiplier gates at all: a single committed value V0 and whatever
// linear constraints over it and One the caller later registers on its
// own r1cs.Verifier. Since there is no gate, G(1)/H(1)'s sole entry is
// pure padding (bp_gens still needs capacity 1, since padded_n is never
// less than 1), and every derived weight at that index is zero.
func CommitmentOnly(rnd io.Reader, pcGens generators.PedersenGens, bpGens *generators.BulletproofGens, v0 curve.Scalar) (*r1cs.Proof, []curve.Element, error) {
	blind0 := randomScalar(rnd)
	v0Point := pcGens.Commit(v0, blind0)
	vPoints := []curve.Element{v0Point}

	result, _, err := buildCircuitProof(rnd, pcGens, bpGens, vPoints, gateWitness{onlyPad: true}, nil)
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
