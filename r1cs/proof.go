package r1cs

import (
	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/ipp"
)

// Proof is the opaque wire record the verifier consumes: three phase-1
// circuit commitments, three phase-2 circuit commitments, five
// T-polynomial commitments (T_2 is derivable from t_x and omitted by the
// prover), three revealed scalars, and an embedded inner-product proof.
// No byte-level (de)serialization is provided here; proof-byte
// serialization is out of scope for the verifier core.
type Proof struct {
	AI1 curve.Element
	AO1 curve.Element
	S1  curve.Element

	AI2 curve.Element
	AO2 curve.Element
	S2  curve.Element

	T1 curve.Element
	T3 curve.Element
	T4 curve.Element
	T5 curve.Element
	T6 curve.Element

	TX         curve.Scalar
	TXBlinding curve.Scalar
	EBlinding  curve.Scalar

	IPP ipp.Proof
}
