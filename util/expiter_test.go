package util

import (
	"testing"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

func TestPowers(t *testing.T) {
	x := curve.ScalarFromUint64(3)
	got := Powers(x, 4)

	want := []curve.Scalar{
		curve.ScalarFromUint64(1),
		curve.ScalarFromUint64(3),
		curve.ScalarFromUint64(9),
		curve.ScalarFromUint64(27),
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Powers(3,4)[%d] mismatch", i)
		}
	}
}

func TestExpIteratorMatchesPowers(t *testing.T) {
	x := curve.ScalarFromUint64(5)
	it := NewExpIterator(x)
	powers := Powers(x, 3)
	for i := 0; i < 3; i++ {
		if !it.Next().Equal(powers[i]) {
			t.Errorf("iterator step %d mismatch", i)
		}
	}
}

func TestZeroize(t *testing.T) {
	s := []curve.Scalar{curve.ScalarFromUint64(7), curve.ScalarFromUint64(9)}
	Zeroize(s)
	for i, v := range s {
		if !v.Equal(curve.ZeroScalar()) {
			t.Errorf("s[%d] not zeroed", i)
		}
	}
}
