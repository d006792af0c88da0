// Package transcript implements a Merlin-style Fiat-Shamir transcript: a
// strict, domain-separated record of every point and scalar a protocol
// run observes, from which challenge scalars are drawn deterministically.
// It is a reusable, order-enforcing primitive with wide-reduction
// challenges and a real clone operation.
package transcript

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

// Transcript accumulates a strictly ordered sequence of labeled messages.
// Its zero value is not usable; construct one with New.
type Transcript struct {
	buf []byte
}

// New starts a fresh transcript under the given top-level domain
// separator, e.g. "r1cs v1".
func New(label string) *Transcript {
	t := &Transcript{}
	t.appendEncoded("dom-sep", []byte(label))
	return t
}

// Clone returns an independent copy of t's current state. Used to draw a
// local randomizer (the verification-scalars algorithm's "r") without
// advancing the shared transcript, since each instance's r in batch
// verification must be independent.
func (t *Transcript) Clone() *Transcript {
	c := &Transcript{buf: make([]byte, len(t.buf))}
	copy(c.buf, t.buf)
	return c
}

func (t *Transcript) appendEncoded(label string, data []byte) {
	var lenBuf [4]byte

	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(label)))
	t.buf = append(t.buf, lenBuf[:]...)
	t.buf = append(t.buf, label...)

	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(data)))
	t.buf = append(t.buf, lenBuf[:]...)
	t.buf = append(t.buf, data...)
}

// AppendMessage records an arbitrary labeled byte string.
func (t *Transcript) AppendMessage(label string, msg []byte) {
	t.appendEncoded(label, msg)
}

// AppendUint64 records a labeled 64-bit counter, used for the "m" label
// (count of committed variables).
func (t *Transcript) AppendUint64(label string, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	t.appendEncoded(label, b[:])
}

// AppendScalar records a labeled field scalar.
func (t *Transcript) AppendScalar(label string, s curve.Scalar) {
	t.appendEncoded(label, s.Bytes())
}

// AppendPoint records a labeled group element. If validate is true, the
// identity element is rejected (used for A_I1, A_O1, S1 and the T_i
// commitments, which must never legitimately be the identity).
func (t *Transcript) AppendPoint(label string, p curve.Element, validate bool) error {
	if validate && p.IsIdentity() {
		return errIdentityPoint(label)
	}
	t.appendEncoded(label, p.Bytes())
	return nil
}

// ChallengeScalar draws a challenge scalar bound to every message appended
// so far (and to every previously drawn challenge, since each challenge is
// itself folded back into the transcript state before returning).
func (t *Transcript) ChallengeScalar(label string) curve.Scalar {
	t.appendEncoded("challenge", []byte(label))

	digest := make([]byte, 64)
	sha3.ShakeSum256(digest, t.buf)

	x := new(big.Int).SetBytes(digest)
	x.Mod(x, scalarFieldOrder)
	s := curve.ScalarFromBigInt(x)

	// Fold the derived challenge back into the transcript state so that
	// subsequent challenges depend on it, not just on appended messages.
	t.appendEncoded(label, s.Bytes())
	return s
}

// scalarFieldOrder is the order of the Ristretto255 scalar field, used to
// reduce wide SHAKE256 output into a field element.
var scalarFieldOrder, _ = new(big.Int).SetString(
	"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
