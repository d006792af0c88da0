package r1cs

import (
	"errors"
	"fmt"
)

// ErrInvalidGeneratorsLength is returned when the supplied
// BulletproofGens cannot cover the circuit's padded multiplier count.
// Detected before any challenge draw that would be affected by it.
var ErrInvalidGeneratorsLength = errors.New("r1cs: generators capacity smaller than padded circuit size")

// ErrVerification is the single closed error surfaced for every proof
// rejection: a transcript point validation failure, an IPP sub-verifier
// failure, a non-identity final MSM, or a deferred constraint callback
// failure. Batch verification deliberately does not distinguish which
// instance failed; that imprecision is the security property of batch
// verification, not an omission.
var ErrVerification = errors.New("r1cs: verification failed")

// GadgetError wraps an error returned by a caller-supplied deferred
// constraint callback registered via SpecifyRandomizedConstraints. It is
// the only error kind user code may originate.
type GadgetError struct {
	Msg string
}

func (e GadgetError) Error() string {
	return fmt.Sprintf("r1cs: gadget error: %s", e.Msg)
}

func wrapVerification(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", context, ErrVerification, err)
}
