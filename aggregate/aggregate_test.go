package aggregate

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func u(v uint64) *uint256.Int { return uint256.NewInt(v) }

func TestMedianOddCount(t *testing.T) {
	values := []*uint256.Int{u(30), u(10), u(20)}
	got := Median(values)
	if got.Cmp(u(20)) != 0 {
		t.Fatalf("median = %v, want 20", got)
	}
}

func TestMedianEvenCount(t *testing.T) {
	values := []*uint256.Int{u(10), u(21)}
	got := Median(values)
	if got.Cmp(u(15)) != 0 {
		t.Fatalf("median = %v, want 15", got)
	}
}

func TestMedianSingleValue(t *testing.T) {
	values := []*uint256.Int{u(1000)}
	got := Median(values)
	if got.Cmp(u(1000)) != 0 {
		t.Fatalf("median = %v, want 1000", got)
	}
}

func TestAvgOverflowFree(t *testing.T) {
	maxUint256, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	a := new(uint256.Int).SetBytes(maxUint256.Bytes())
	b := new(uint256.Int).SetBytes(maxUint256.Bytes())

	got := avg(a, b)
	if got.Cmp(a) != 0 {
		t.Fatalf("avg(max, max) = %v, want %v", got, a)
	}

	// avg must equal floor((a+b)/2) for arbitrary a, b in the domain,
	// computed independently via big.Int for comparison.
	cases := []struct{ a, b uint64 }{
		{0, 1}, {1, 0}, {5, 6}, {0, 0}, {1<<63 - 1, 1 << 63},
	}
	for _, c := range cases {
		got := avg(uint256.NewInt(c.a), uint256.NewInt(c.b))
		want := new(big.Int).Add(new(big.Int).SetUint64(c.a), new(big.Int).SetUint64(c.b))
		want.Div(want, big.NewInt(2))
		if got.ToBig().Cmp(want) != 0 {
			t.Fatalf("avg(%d,%d) = %v, want %v", c.a, c.b, got, want)
		}
	}

	// Overflow case: a+b exceeds the 256-bit domain.
	big1 := new(uint256.Int).SetBytes(maxUint256.Bytes())
	bigMinus1 := new(uint256.Int).Sub(big1, uint256.NewInt(1))
	gotOverflow := avg(big1, bigMinus1)
	wantOverflow := new(big.Int).Sub(maxUint256, big.NewInt(0))
	wantOverflow.Add(wantOverflow, new(big.Int).Sub(maxUint256, big.NewInt(1)))
	wantOverflow.Div(wantOverflow, big.NewInt(2))
	if gotOverflow.ToBig().Cmp(wantOverflow) != 0 {
		t.Fatalf("avg(max,max-1) = %v, want %v", gotOverflow, wantOverflow)
	}
}

func TestMedianInvariantUnderPermutation(t *testing.T) {
	perm1 := []*uint256.Int{u(7), u(3), u(9), u(1)}
	perm2 := []*uint256.Int{u(1), u(9), u(3), u(7)}
	if Median(perm1).Cmp(Median(perm2)) != 0 {
		t.Fatalf("median not invariant under permutation")
	}
}
