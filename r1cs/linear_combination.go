package r1cs

import "github.com/FindoraNetwork/bulletproofs-bs257/curve"

// Term is a single (Variable, coefficient) pair in a LinearCombination.
type Term struct {
	Variable Variable
	Coeff    curve.Scalar
}

// LinearCombination is a formal sum of coefficient*Variable terms,
// asserted equal to zero when pushed into the constraint system.
// Duplicate variables are permitted: flattening sums them additively. No
// simplification is performed at construction time.
type LinearCombination []Term

// LC builds a LinearCombination from a single (variable, coefficient)
// pair.
func LC(v Variable, coeff curve.Scalar) LinearCombination {
	return LinearCombination{{Variable: v, Coeff: coeff}}
}

// Constant builds a LinearCombination equal to the constant c (i.e.
// c*One).
func Constant(c curve.Scalar) LinearCombination {
	return LC(One, c)
}

// Add returns a new LinearCombination with term appended.
func (lc LinearCombination) Add(v Variable, coeff curve.Scalar) LinearCombination {
	return append(append(LinearCombination{}, lc...), Term{Variable: v, Coeff: coeff})
}
