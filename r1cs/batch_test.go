package r1cs

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
	"github.com/FindoraNetwork/bulletproofs-bs257/generators"
	"github.com/FindoraNetwork/bulletproofs-bs257/internal/fixtures"
	"github.com/FindoraNetwork/bulletproofs-bs257/transcript"
)

// multiplicationGadgetVerifier drives a fresh Verifier through the same
// commit/multiply/constrain sequence fixtures.MultiplicationGadget's
// proof was built against: commit a, b, c as V0, V1, V2, allocate one
// multiplier gate, and assert a*b == c.
func multiplicationGadgetVerifier(vPoints []curve.Element) *Verifier {
	tr := transcript.New("r1cs v1")
	v := NewVerifier(tr)
	v0 := v.Commit(vPoints[0])
	v1 := v.Commit(vPoints[1])
	v2 := v.Commit(vPoints[2])
	_, _, o := v.Multiply(LC(v0, curve.OneScalar()), LC(v1, curve.OneScalar()))
	v.Constrain(LC(o, curve.OneScalar()).Add(v2, curve.OneScalar().Neg()))
	return v
}

// randomizedGadgetVerifier drives a fresh Verifier matching
// fixtures.RandomizedGadget's proof: commit v0 as V0, then register the
// deferred constraint "e*V0 + l == 0" over a phase-2 multiplier gate
// whose right and output wires are left unconstrained.
func randomizedGadgetVerifier(vPoints []curve.Element) *Verifier {
	tr := transcript.New("r1cs v1")
	v := NewVerifier(tr)
	v0 := v.Commit(vPoints[0])
	v.SpecifyRandomizedConstraints(DeferredConstraintFunc(func(rv *RandomizingVerifier) error {
		e := rv.ChallengeScalar("e")
		l, _, _ := rv.AllocateMultiplier([2]curve.Scalar{})
		rv.Constrain(LC(v0, e).Add(l, curve.OneScalar()))
		return nil
	}))
	return v
}

func TestVerifyMultiplicationGadgetAccepts(t *testing.T) {
	pcGens := generators.NewPedersenGens()
	bpGens := generators.NewBulletproofGens(1)

	a := curve.ScalarFromUint64(6)
	b := curve.ScalarFromUint64(7)
	proof, vPoints, err := fixtures.MultiplicationGadget(rand.Reader, pcGens, bpGens, a, b)
	if err != nil {
		t.Fatalf("MultiplicationGadget: %v", err)
	}

	v := multiplicationGadgetVerifier(vPoints)
	if err := v.Verify(proof, pcGens, bpGens); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerifyMultiplicationGadgetRejectsWrongProduct(t *testing.T) {
	pcGens := generators.NewPedersenGens()
	bpGens := generators.NewBulletproofGens(1)

	a := curve.ScalarFromUint64(6)
	b := curve.ScalarFromUint64(7)
	proof, vPoints, err := fixtures.MultiplicationGadget(rand.Reader, pcGens, bpGens, a, b)
	if err != nil {
		t.Fatalf("MultiplicationGadget: %v", err)
	}

	// Tamper with the c commitment so the asserted product no longer
	// matches what the proof actually attests to.
	tampered := append([]curve.Element{}, vPoints...)
	tampered[2] = tampered[2].Add(pcGens.B)

	v := multiplicationGadgetVerifier(tampered)
	if err := v.Verify(proof, pcGens, bpGens); !errors.Is(err, ErrVerification) {
		t.Errorf("Verify: got %v, want ErrVerification", err)
	}
}

func TestVerifyRandomizedGadgetAccepts(t *testing.T) {
	pcGens := generators.NewPedersenGens()
	bpGens := generators.NewBulletproofGens(1)

	v0 := curve.ScalarFromUint64(42)
	proof, vPoints, err := fixtures.RandomizedGadget(rand.Reader, pcGens, bpGens, v0)
	if err != nil {
		t.Fatalf("RandomizedGadget: %v", err)
	}

	v := randomizedGadgetVerifier(vPoints)
	if err := v.Verify(proof, pcGens, bpGens); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestBatchVerifyAcceptsMixedInstances(t *testing.T) {
	pcGens := generators.NewPedersenGens()
	bpGens := generators.NewBulletproofGens(1)

	proof1, vPoints1, err := fixtures.MultiplicationGadget(rand.Reader, pcGens, bpGens, curve.ScalarFromUint64(3), curve.ScalarFromUint64(4))
	if err != nil {
		t.Fatalf("MultiplicationGadget(1): %v", err)
	}
	proof2, vPoints2, err := fixtures.MultiplicationGadget(rand.Reader, pcGens, bpGens, curve.ScalarFromUint64(5), curve.ScalarFromUint64(9))
	if err != nil {
		t.Fatalf("MultiplicationGadget(2): %v", err)
	}
	proof3, vPoints3, err := fixtures.RandomizedGadget(rand.Reader, pcGens, bpGens, curve.ScalarFromUint64(11))
	if err != nil {
		t.Fatalf("RandomizedGadget: %v", err)
	}

	instances := []BatchInstance{
		{Verifier: multiplicationGadgetVerifier(vPoints1), Proof: proof1},
		{Verifier: multiplicationGadgetVerifier(vPoints2), Proof: proof2},
		{Verifier: randomizedGadgetVerifier(vPoints3), Proof: proof3},
	}

	if err := BatchVerify(instances, pcGens, bpGens, rand.Reader); err != nil {
		t.Errorf("BatchVerify: %v", err)
	}
}

func TestBatchVerifyRejectsIfAnyInstanceIsCorrupt(t *testing.T) {
	pcGens := generators.NewPedersenGens()
	bpGens := generators.NewBulletproofGens(1)

	proof1, vPoints1, err := fixtures.MultiplicationGadget(rand.Reader, pcGens, bpGens, curve.ScalarFromUint64(3), curve.ScalarFromUint64(4))
	if err != nil {
		t.Fatalf("MultiplicationGadget(1): %v", err)
	}
	proof2, vPoints2, err := fixtures.MultiplicationGadget(rand.Reader, pcGens, bpGens, curve.ScalarFromUint64(5), curve.ScalarFromUint64(9))
	if err != nil {
		t.Fatalf("MultiplicationGadget(2): %v", err)
	}
	proof3, vPoints3, err := fixtures.RandomizedGadget(rand.Reader, pcGens, bpGens, curve.ScalarFromUint64(11))
	if err != nil {
		t.Fatalf("RandomizedGadget: %v", err)
	}

	// Corrupt the second instance's revealed t_x by one unit.
	corrupted := *proof2
	corrupted.TX = corrupted.TX.Add(curve.OneScalar())

	instances := []BatchInstance{
		{Verifier: multiplicationGadgetVerifier(vPoints1), Proof: proof1},
		{Verifier: multiplicationGadgetVerifier(vPoints2), Proof: &corrupted},
		{Verifier: randomizedGadgetVerifier(vPoints3), Proof: proof3},
	}

	if err := BatchVerify(instances, pcGens, bpGens, rand.Reader); !errors.Is(err, ErrVerification) {
		t.Errorf("BatchVerify: got %v, want ErrVerification", err)
	}
}
