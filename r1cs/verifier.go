package r1cs

import (
	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/transcript"
)

type phase uint8

const (
	phaseOne phase = iota
	phaseTwo
)

// DeferredConstraint is a piece of phase-2 logic registered during phase
// 1 and run once verifier-chosen challenges become available. Any type
// implementing Extend may be registered, including the function adapter
// DeferredConstraintFunc below.
type DeferredConstraint interface {
	Extend(*RandomizingVerifier) error
}

// DeferredConstraintFunc adapts a plain function to the
// DeferredConstraint interface.
type DeferredConstraintFunc func(*RandomizingVerifier) error

// Extend calls f.
func (f DeferredConstraintFunc) Extend(rv *RandomizingVerifier) error {
	return f(rv)
}

// Verifier is the phase-1 constraint-system API: it lets a caller commit
// high-level inputs, allocate multiplier gates, push linear constraints,
// and register deferred phase-2 constraints, then consumes itself to
// produce the canonical verification scalar vector.
//
// A Verifier holds exclusive access to its transcript for its entire
// lifetime. It is mutated monotonically: commitments, constraints and
// the multiplier count only ever grow.
type Verifier struct {
	transcript *transcript.Transcript

	constraints []LinearCombination
	numVars     int
	v           []curve.Element

	deferred []DeferredConstraint

	pendingMultiplier *int

	phase phase
}

// NewVerifier starts a fresh phase-1 verifier over tr, appending the
// protocol's top-level domain separator.
func NewVerifier(tr *transcript.Transcript) *Verifier {
	tr.AppendMessage("dom-sep", []byte("r1cs v1"))
	return &Verifier{transcript: tr, phase: phaseOne}
}

// Commit appends a high-level input's commitment to the transcript and
// to V, returning the Variable handle future constraints should
// reference. Must be called for every high-level input before any
// challenge is drawn that depends on them; the transcript enforces this
// by construction since commitments feed directly into the "m", "y", "z"
// challenge derivation.
func (v *Verifier) Commit(c curve.Element) Variable {
	v.transcript.AppendPoint("V", c, false)
	v.v = append(v.v, c)
	return Committed(len(v.v) - 1)
}

// Multiply allocates a new multiplier gate and constrains its left and
// right wires to equal left and right, returning the gate's three wire
// variables.
func (v *Verifier) Multiply(left, right LinearCombination) (l, r, o Variable) {
	i := v.numVars
	v.numVars++

	l = multiplierLeft(i)
	r = multiplierRight(i)
	o = multiplierOutput(i)

	negOne := curve.OneScalar().Neg()
	left = append(append(LinearCombination{}, left...), Term{Variable: l, Coeff: negOne})
	right = append(append(LinearCombination{}, right...), Term{Variable: r, Coeff: negOne})

	v.constraints = append(v.constraints, left, right)
	return l, r, o
}

// Allocate pairs two single-wire allocations into one multiplier gate.
// The first call in a pair allocates a fresh gate and returns its left
// wire; the second call consumes that pending gate and returns its right
// wire. assignment is accepted and discarded: the verifier has no
// witness to assign, and the parameter exists only for signature
// symmetry with a prover-side constraint system.
func (v *Verifier) Allocate(assignment curve.Scalar) Variable {
	if v.pendingMultiplier == nil {
		i := v.numVars
		v.numVars++
		v.pendingMultiplier = &i
		return multiplierLeft(i)
	}
	i := *v.pendingMultiplier
	v.pendingMultiplier = nil
	return multiplierRight(i)
}

// AllocateMultiplier allocates a fresh gate and returns all three wires
// with no auto-constraint linking them to caller-provided expressions.
func (v *Verifier) AllocateMultiplier(assignment [2]curve.Scalar) (l, r, o Variable) {
	i := v.numVars
	v.numVars++
	return multiplierLeft(i), multiplierRight(i), multiplierOutput(i)
}

// MultipliersLen reports the number of multiplier gates allocated so far.
func (v *Verifier) MultipliersLen() int {
	return v.numVars
}

// Constrain pushes lc, asserting it equals zero. No validation is
// performed at this layer; flattening is where constraints are actually
// checked against a witness (by the prover) or folded into scalar
// coefficients (by the verifier).
func (v *Verifier) Constrain(lc LinearCombination) {
	v.constraints = append(v.constraints, lc)
}

// SpecifyRandomizedConstraints registers callback for the phase-2
// transition. Callbacks run in the order they were registered so that
// the challenges they draw are deterministic across prover and verifier.
func (v *Verifier) SpecifyRandomizedConstraints(callback DeferredConstraint) {
	v.deferred = append(v.deferred, callback)
}

// createRandomizedConstraints transitions the verifier into phase 2:
// clears the pending half-gate, appends the appropriate domain
// separator, and drains the deferred callback list in insertion order.
func (v *Verifier) createRandomizedConstraints() error {
	v.pendingMultiplier = nil

	if len(v.deferred) == 0 {
		v.transcript.AppendMessage("dom-sep", []byte("r1cs-1phase"))
		v.phase = phaseTwo
		return nil
	}

	v.transcript.AppendMessage("dom-sep", []byte("r1cs-2phase"))
	v.phase = phaseTwo

	rv := &RandomizingVerifier{Verifier: v}
	callbacks := v.deferred
	v.deferred = nil
	for _, cb := range callbacks {
		if err := cb.Extend(rv); err != nil {
			return err
		}
	}
	return nil
}
