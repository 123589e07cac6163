// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package interval approximates the full sumset of a set whose elements all
// lie within a single 2x interval [start, 2*start], by recursively halving
// the set and multiplicatively merging the two halves' approximations back
// together — the per-level error budget shrinks by log2(n) so the total
// error across the recursion stays within delta.
package interval

import (
	"fmt"
	"math"

	"github.com/kvns-labs/partition/merge"
)

// SumsetIntervalApproximation approximates the sumset of values known to
// lie in [start, 2*start], to within multiplicative error delta.
type SumsetIntervalApproximation struct {
	start uint64
	delta float64
}

// NewSumsetIntervalApproximation builds an approximator for an interval
// starting at start with multiplicative error budget delta.
func NewSumsetIntervalApproximation(start uint64, delta float64) *SumsetIntervalApproximation {
	return &SumsetIntervalApproximation{start: start, delta: delta}
}

// NewSumsetEpsilonAdditiveApproximation builds an approximator specialised
// for an (additive) 1/epsilonInv error budget over a set in
// [epsilonInv, 2*epsilonInv).
func NewSumsetEpsilonAdditiveApproximation(epsilonInv uint64) *SumsetIntervalApproximation {
	return NewSumsetIntervalApproximation(epsilonInv, 1.0/float64(epsilonInv))
}

// Approximate returns the approximate sumset of set. Every element of set
// must lie in [start, 2*start].
func (s *SumsetIntervalApproximation) Approximate(set []uint64) []uint64 {
	for _, x := range set {
		if x < s.start || x > s.start*2 {
			panic(fmt.Sprintf("interval: value %d out of range [%d, %d]", x, s.start, s.start*2))
		}
	}
	if len(set) <= 1 {
		// log2(len) is undefined (0) or -Inf (empty) here; delta is never
		// consulted by approximateRecursive's own len<=1 base case either way.
		return append([]uint64(nil), set...)
	}
	delta := s.delta / math.Ceil(math.Log2(float64(len(set))))
	return s.approximateRecursive(set, delta)
}

func (s *SumsetIntervalApproximation) approximateRecursive(a []uint64, delta float64) []uint64 {
	if len(a) <= 1 {
		return append([]uint64(nil), a...)
	}

	pivot := len(a) / 2
	left, right := a[:pivot], a[pivot:]
	leftApprox := s.approximateRecursive(left, delta)
	rightApprox := s.approximateRecursive(right, delta)

	merger := merge.NewMultiplicativeBoundedMerger(s.start, s.start, delta, uint64(len(a))*s.start*2)
	merged := merger.Merge(leftApprox, rightApprox)

	out := make([]uint64, 0, len(merged)+len(leftApprox)+len(rightApprox))
	out = append(out, merged...)
	out = append(out, leftApprox...)
	out = append(out, rightApprox...)
	return out
}
