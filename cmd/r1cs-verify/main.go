// Command r1cs-verify is a small end-to-end demonstration of the
// verifier core: it builds a satisfying proof for a single multiplier
// gate using the in-house test harness, drives a real Verifier through
// the matching commit/multiply/constrain sequence, and reports whether
// the proof is accepted.
package main

import (
	"crypto/rand"
	"fmt"
	"log"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/internal/fixtures"
	"github.com/FindoraNetwork/bulletproofs-bs257/r1cs"
	"github.com/FindoraNetwork/bulletproofs-bs257/transcript"
)

func main() {
	pcGens := generators.NewPedersenGens()
	bpGens := generators.NewBulletproofGens(1)

	a := curve.ScalarFromUint64(6)
	b := curve.ScalarFromUint64(7)

	fmt.Println("Proving a*b == c for a =", 6, "b =", 7)
	proof, vPoints, err := fixtures.MultiplicationGadget(rand.Reader, pcGens, bpGens, a, b)
	if err != nil {
		log.Fatalf("building proof: %v", err)
	}

	tr := transcript.New("r1cs v1")
	v := r1cs.NewVerifier(tr)
	v0 := v.Commit(vPoints[0])
	v1 := v.Commit(vPoints[1])
	v2 := v.Commit(vPoints[2])
	_, _, o := v.Multiply(r1cs.LC(v0, curve.OneScalar()), r1cs.LC(v1, curve.OneScalar()))
	v.Constrain(r1cs.LC(o, curve.OneScalar()).Add(v2, curve.OneScalar().Neg()))

	fmt.Println("Verifying proof")
	if err := v.Verify(proof, pcGens, bpGens); err != nil {
		log.Fatalf("proof rejected: %v", err)
	}
	fmt.Println("Proof accepted")
}
