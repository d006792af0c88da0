package generators

import (
	"testing"

	"github.com/FindoraNetwork/bulletproofs-bs257/curve"
)

func scalarOf(x uint64) curve.Scalar {
	return curve.ScalarFromUint64(x)
}

func TestPedersenGensCommitHomomorphic(t *testing.T) {
	pg := NewPedersenGens()

	c1 := pg.Commit(scalarOf(3), scalarOf(5))
	c2 := pg.Commit(scalarOf(4), scalarOf(6))
	sum := pg.Commit(scalarOf(7), scalarOf(11))

	if !c1.Add(c2).Equal(sum) {
		t.Errorf("Pedersen commitments are not additively homomorphic")
	}
}

func TestBulletproofGensCapacity(t *testing.T) {
	bg := NewBulletproofGens(8)
	if bg.Capacity() != 8 {
		t.Fatalf("capacity = %d, want 8", bg.Capacity())
	}

	g, err := bg.G(4)
	if err != nil || len(g) != 4 {
		t.Fatalf("G(4) = %v, %v", g, err)
	}

	if _, err := bg.G(9); err == nil {
		t.Errorf("expected error requesting more generators than capacity")
	}
}

func TestBulletproofGensDistinct(t *testing.T) {
	bg := NewBulletproofGens(4)
	g, _ := bg.G(4)
	h, _ := bg.H(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			if g[i].Equal(g[j]) {
				t.Errorf("G generators collided at %d,%d", i, j)
			}
		}
		if g[i].Equal(h[i]) {
			t.Errorf("G and H generator collided at index %d", i)
		}
	}
}
