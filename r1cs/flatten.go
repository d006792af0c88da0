package r1cs

import "github.com/FindoraNetwork/bulletproofs-bs257/curve"

// flattened holds the five weight vectors the flattening algorithm
// produces from a challenge z: wL, wR, wO index multiplier gates; wV
// indexes committed variables; wc is the flattened constant term.
type flattened struct {
	wL []curve.Scalar
	wR []curve.Scalar
	wO []curve.Scalar
	wV []curve.Scalar
	wc curve.Scalar
}

// flatten compresses v's constraints into the five weight vectors,
// weighting the q-th constraint (1-indexed) by z^q. Committed and One
// terms have their sign flipped, since they move to the right-hand side
// of each constraint equation.
func (v *Verifier) flatten(z curve.Scalar) flattened {
	f := flattened{
		wL: make([]curve.Scalar, v.numVars),
		wR: make([]curve.Scalar, v.numVars),
		wO: make([]curve.Scalar, v.numVars),
		wV: make([]curve.Scalar, len(v.v)),
		wc: curve.ZeroScalar(),
	}

	expZ := z
	for _, constraint := range v.constraints {
		for _, term := range constraint {
			weighted := expZ.Mul(term.Coeff)
			switch term.Variable.kind {
			case varMultiplierLeft:
				i := term.Variable.index
				f.wL[i] = f.wL[i].Add(weighted)
			case varMultiplierRight:
				i := term.Variable.index
				f.wR[i] = f.wR[i].Add(weighted)
			case varMultiplierOutput:
				i := term.Variable.index
				f.wO[i] = f.wO[i].Add(weighted)
			case varCommitted:
				i := term.Variable.index
				f.wV[i] = f.wV[i].Sub(weighted)
			case varOne:
				f.wc = f.wc.Sub(weighted)
			}
		}
		expZ = expZ.Mul(z)
	}

	return f
}
