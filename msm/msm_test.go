package msm

import (
	"testing"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

func TestBuilderEvaluate(t *testing.T) {
	var b Builder
	b.Add(curve.ScalarFromUint64(2), curve.Generator())
	b.Add(curve.ScalarFromUint64(3), curve.BaseMul(curve.ScalarFromUint64(5)))

	got, err := b.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := curve.BaseMul(curve.ScalarFromUint64(2)).Add(curve.BaseMul(curve.ScalarFromUint64(15)))
	if !got.Equal(want) {
		t.Errorf("Evaluate mismatch")
	}
}

func TestBuilderEvaluateIsIdentity(t *testing.T) {
	var b Builder
	b.Add(curve.ScalarFromUint64(4), curve.Generator())
	b.Add(curve.ScalarFromUint64(1), curve.BaseMul(curve.ScalarFromUint64(4)).Neg())

	ok, err := b.EvaluateIsIdentity()
	if err != nil {
		t.Fatalf("EvaluateIsIdentity: %v", err)
	}
	if !ok {
		t.Errorf("expected 4*G - 4*G to be identity")
	}
}

func TestBuilderAddAllLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on mismatched lengths")
		}
	}()
	var b Builder
	b.AddAll([]curve.Scalar{curve.ScalarFromUint64(1)}, nil)
}
