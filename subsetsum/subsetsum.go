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

// Package subsetsum computes the sumset {a+b : a in A, b in B} (and its 2-D
// analogue over integer pairs, added componentwise) by composing
// characteristic-vector encoding with a boolean convolution, falling back to
// direct enumeration when the inputs are too small for the transform
// overhead to pay for itself.
package subsetsum

import (
	"github.com/kvns-labs/partition/characteristic"
	"github.com/kvns-labs/partition/convolve"
)

// BruteForceThreshold is the |a|*|b| cutover below which Bounded[SubsetSum]
// enumerates directly instead of paying for a characteristic-vector
// convolution. A single tunable constant, not part of any external
// contract; correctness holds for any value in a wide range, only
// performance varies.
var BruteForceThreshold = 1000

// Backend selects which convolve.Convoluter implementation the bounded
// variants use once they're past the brute-force cutover.
var Backend = convolve.BackendFFT

// SubsetSum returns the sumset of a and b: every value reachable as some
// a[i]+b[j]. The bound is derived from the operands themselves (their sum
// of maxima, plus one).
func SubsetSum(a, b []uint64) []uint64 {
	bound := maxOf(a) + maxOf(b) + 1
	return BoundedSubsetSum(a, b, bound)
}

// BoundedSubsetSum returns the sumset of a and b, discarding any sum that
// would reach or exceed bound.
func BoundedSubsetSum(a, b []uint64, bound uint64) []uint64 {
	if uint64(len(a))*uint64(len(b)) < uint64(BruteForceThreshold) {
		return bruteSumset(a, b, bound)
	}

	coder := characteristic.NewCoder1D(int(bound))
	conv := convolve.New(Backend, coder.FFTSize())
	bits := conv.Convolute(coder.Encode(a), coder.Encode(b))
	return coder.Decode(bits)
}

// SubsetSum2D is the componentwise-pair analogue of SubsetSum.
func SubsetSum2D(a, b [][2]uint64) [][2]uint64 {
	aX, aY := maxPair(a)
	bX, bY := maxPair(b)
	return BoundedSubsetSum2D(a, b, aX+bX+1, aY+bY+1)
}

// BoundedSubsetSum2D is the componentwise-pair analogue of BoundedSubsetSum.
func BoundedSubsetSum2D(a, b [][2]uint64, xBound, yBound uint64) [][2]uint64 {
	if uint64(len(a))*uint64(len(b)) < uint64(BruteForceThreshold) {
		return bruteSumset2D(a, b, xBound, yBound)
	}

	coder := characteristic.NewCoder2D(int(xBound), int(yBound))
	conv := convolve.New(Backend, coder.FFTSize())
	bits := conv.Convolute(coder.Encode(a), coder.Encode(b))
	return coder.Decode(bits)
}

func maxOf(values []uint64) uint64 {
	var m uint64
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

func maxPair(values [][2]uint64) (x, y uint64) {
	for _, v := range values {
		if v[0] > x {
			x = v[0]
		}
		if v[1] > y {
			y = v[1]
		}
	}
	return x, y
}

func bruteSumset(a, b []uint64, bound uint64) []uint64 {
	seen := make(map[uint64]struct{})
	for _, x := range a {
		for _, y := range b {
			s := x + y
			if s < bound {
				seen[s] = struct{}{}
			}
		}
	}
	out := make([]uint64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

func bruteSumset2D(a, b [][2]uint64, xBound, yBound uint64) [][2]uint64 {
	seen := make(map[[2]uint64]struct{})
	for _, x := range a {
		for _, y := range b {
			s := [2]uint64{x[0] + y[0], x[1] + y[1]}
			if s[0] < xBound && s[1] < yBound {
				seen[s] = struct{}{}
			}
		}
	}
	out := make([][2]uint64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}
