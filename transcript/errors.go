package transcript

import "fmt"

// IdentityPointError is returned by AppendPoint when a point that must
// never legitimately be the identity was observed as the identity.
type IdentityPointError struct {
	Label string
}

func (e IdentityPointError) Error() string {
	return fmt.Sprintf("transcript: point for label %q is the identity element", e.Label)
}

func errIdentityPoint(label string) error {
	return IdentityPointError{Label: label}
}
