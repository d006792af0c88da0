// Package r1cs implements the verifier core of a Bulletproofs-style
// rank-1-constraint-system proof system: the two-phase constraint
// assembly state machine, the flattening algorithm, the
// verification-scalars builder, single-proof verification and batch
// verification.
package r1cs

import "fmt"

type variableKind uint8

const (
	varMultiplierLeft variableKind = iota
	varMultiplierRight
	varMultiplierOutput
	varCommitted
	varOne
)

// Variable is an opaque handle into the constraint system. The verifier
// never holds the scalar value a Variable denotes; it only tracks which
// wire or commitment slot the handle refers to. This is the five-way sum
// type from the constraint-system protocol, encoded as a (kind, index)
// pair since Go has no native sum types.
type Variable struct {
	kind  variableKind
	index uint32
}

// One is the constant-1 variable, usable in any LinearCombination.
var One = Variable{kind: varOne}

func multiplierLeft(i int) Variable  { return Variable{kind: varMultiplierLeft, index: uint32(i)} }
func multiplierRight(i int) Variable { return Variable{kind: varMultiplierRight, index: uint32(i)} }
func multiplierOutput(i int) Variable {
	return Variable{kind: varMultiplierOutput, index: uint32(i)}
}

// Committed returns the handle for the i-th externally committed
// high-level variable.
func Committed(i int) Variable {
	return Variable{kind: varCommitted, index: uint32(i)}
}

func (v Variable) String() string {
	switch v.kind {
	case varMultiplierLeft:
		return fmt.Sprintf("MultiplierLeft(%d)", v.index)
	case varMultiplierRight:
		return fmt.Sprintf("MultiplierRight(%d)", v.index)
	case varMultiplierOutput:
		return fmt.Sprintf("MultiplierOutput(%d)", v.index)
	case varCommitted:
		return fmt.Sprintf("Committed(%d)", v.index)
	case varOne:
		return "One"
	default:
		return "Variable(?)"
	}
}
