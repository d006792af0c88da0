package r1cs

import "github.com/FindoraNetwork/bulletproofs-bs257/curve"

// RandomizingVerifier is the phase-2 constraint-system view: every
// method a Verifier exposes, inherited by embedding, plus
// ChallengeScalar. It has no state of its own and is only ever
// constructed by createRandomizedConstraints, never by caller code
// directly.
type RandomizingVerifier struct {
	*Verifier
}

// ChallengeScalar draws a verifier-chosen challenge from the transcript,
// available only once all phase-1 state is fixed.
func (rv *RandomizingVerifier) ChallengeScalar(label string) curve.Scalar {
	return rv.transcript.ChallengeScalar(label)
}
