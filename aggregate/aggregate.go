// Package aggregate computes the per-feed median over the widened
// 256-bit unsigned domain (§4.6), using an overflow-free algebraic
// mean for the even-count case instead of a checked or widened add.
package aggregate

import (
	"sort"

	"github.com/holiman/uint256"
)

// Median returns the median of values. Callers are responsible for
// ensuring len(values) >= 1 (the validator enforces this via quorum).
// Sort order is not required to be stable; the median is invariant
// under permutation.
func Median(values []*uint256.Int) *uint256.Int {
	sorted := make([]*uint256.Int, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return avg(sorted[mid-1], sorted[mid])
}

// avg computes floor((a+b)/2) without ever forming the (possibly
// overflowing) sum a+b:
//
//	avg(a, b) = (a>>1) + (b>>1) + ((a%2 + b%2) >> 1)
func avg(a, b *uint256.Int) *uint256.Int {
	one := uint256.NewInt(1)

	aHalf := new(uint256.Int).Rsh(a, 1)
	bHalf := new(uint256.Int).Rsh(b, 1)

	aBit := new(uint256.Int).And(a, one)
	bBit := new(uint256.Int).And(b, one)
	carry := new(uint256.Int).Add(aBit, bBit)
	carry.Rsh(carry, 1)

	result := new(uint256.Int).Add(aHalf, bHalf)
	result.Add(result, carry)
	return result
}
