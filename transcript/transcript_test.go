package transcript

import (
	"testing"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

func buildSample(seed uint64) *Transcript {
	tr := New("r1cs v1")
	tr.AppendUint64("m", 2)
	tr.AppendPoint("V", curve.BaseMul(curve.ScalarFromUint64(seed)), false)
	tr.AppendScalar("t_x", curve.ScalarFromUint64(seed+1))
	return tr
}

func TestChallengeDeterminism(t *testing.T) {
	t1 := buildSample(3)
	t2 := buildSample(3)

	y1 := t1.ChallengeScalar("y")
	y2 := t2.ChallengeScalar("y")
	if !y1.Equal(y2) {
		t.Errorf("identical transcripts produced different challenges")
	}

	z1 := t1.ChallengeScalar("z")
	z2 := t2.ChallengeScalar("z")
	if !z1.Equal(z2) {
		t.Errorf("identical transcripts produced different second challenges")
	}
	if z1.Equal(y1) {
		t.Errorf("distinct labels produced the same challenge")
	}
}

func TestChallengeDivergesOnDifferentMessages(t *testing.T) {
	t1 := buildSample(3)
	t2 := buildSample(4)

	if t1.ChallengeScalar("y").Equal(t2.ChallengeScalar("y")) {
		t.Errorf("transcripts with different appended messages agreed on a challenge")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := buildSample(9)
	clone := base.Clone()

	r1 := base.ChallengeScalar("r")
	r2 := clone.ChallengeScalar("r")
	if !r1.Equal(r2) {
		t.Errorf("clone diverged before any further append")
	}

	// Advancing the clone further must not affect the original.
	clone.AppendScalar("extra", curve.ScalarFromUint64(1))
	next := clone.ChallengeScalar("after")
	baseNext := base.Clone().ChallengeScalar("after")
	if next.Equal(baseNext) {
		t.Errorf("advancing the clone leaked into an independent clone of the original")
	}
}

func TestAppendPointRejectsIdentity(t *testing.T) {
	tr := New("r1cs v1")
	if err := tr.AppendPoint("A_I1", curve.Identity(), true); err == nil {
		t.Errorf("expected identity point to be rejected")
	}
	if err := tr.AppendPoint("A_I2", curve.Identity(), false); err != nil {
		t.Errorf("unvalidated label should accept identity, got %v", err)
	}
}
