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

package interval

import "testing"

func naiveSumset(values []uint64) []uint64 {
	seen := map[uint64]struct{}{}
	var generate func(idx int, sum uint64)
	generate = func(idx int, sum uint64) {
		if idx == len(values) {
			seen[sum] = struct{}{}
			return
		}
		generate(idx+1, sum+values[idx])
		generate(idx+1, sum)
	}
	generate(0, 0)
	hasZero := false
	for _, v := range values {
		if v == 0 {
			hasZero = true
		}
	}
	if !hasZero {
		delete(seen, 0)
	}
	out := make([]uint64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

func verifyApproximation(t *testing.T, approximation, expected []uint64, deltaMul float64, deltaAdd uint64) {
	t.Helper()
	for _, b := range expected {
		found := false
		for _, a := range approximation {
			if a <= b && uint64((1-deltaMul)*float64(b)) <= a+deltaAdd {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected value %d not covered by approximation %v", b, approximation)
		}
	}
	for _, a := range approximation {
		found := false
		for _, b := range expected {
			if a <= b && uint64((1-deltaMul)*float64(b)) <= a+deltaAdd {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("approximation value %d not found near any expected value in %v", a, expected)
		}
	}
}

func verifyIntervalApproximation(t *testing.T, set []uint64, delta float64) {
	t.Helper()
	var start, end uint64
	for i, v := range set {
		if i == 0 || v < start {
			start = v
		}
		if i == 0 || v > end {
			end = v
		}
	}
	if start*2 < end {
		t.Fatalf("set %v is not within a single 2x interval starting at %d", set, start)
	}
	approx := NewSumsetIntervalApproximation(start, delta).Approximate(set)
	verifyApproximation(t, approx, naiveSumset(set), delta, 0)
}

func TestIntervalApproximation(t *testing.T) {
	verifyIntervalApproximation(t, []uint64{5, 6, 7, 8, 9, 10}, 0.1)
	verifyIntervalApproximation(t, []uint64{5, 6, 7, 8, 9, 10}, 0.01)
	verifyIntervalApproximation(t, []uint64{10, 12, 13, 14, 15, 16, 17, 18, 19, 11}, 0.001)
	verifyIntervalApproximation(t, []uint64{10, 12, 13, 14, 15, 16, 17, 18, 19, 11}, 0.0001)
	verifyIntervalApproximation(t, []uint64{10, 12, 13, 14, 15, 16, 17, 18, 19, 11}, 0.5)
}

func TestIntervalApproximationLarge(t *testing.T) {
	base := []uint64{200, 120, 130, 140, 150, 160, 170, 180, 190, 210, 121, 123, 124, 125, 126, 126, 126, 126, 126, 126, 126, 126}
	set := make([]uint64, len(base))
	for i, v := range base {
		set[i] = v * 1000000000
	}
	verifyIntervalApproximation(t, set, 0.1)
}

func verifyEpsilonAdditiveApproximation(t *testing.T, set []uint64, epsilonInv uint64) {
	t.Helper()
	for _, v := range set {
		if v < epsilonInv || v >= epsilonInv*2 {
			t.Fatalf("value %d out of range [%d, %d)", v, epsilonInv, epsilonInv*2)
		}
	}
	approx := NewSumsetEpsilonAdditiveApproximation(epsilonInv).Approximate(set)
	verifyApproximation(t, approx, naiveSumset(set), 0, uint64(len(set)))
}

func TestIntervalEpsilonApproximation(t *testing.T) {
	verifyEpsilonAdditiveApproximation(t, []uint64{6, 7, 8, 9, 10, 11}, 6)
	set := make([]uint64, 0, 12)
	for v := uint64(12); v < 24; v++ {
		set = append(set, v)
	}
	verifyEpsilonAdditiveApproximation(t, set, 12)
}

func TestApproximateOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for out-of-range value")
		}
	}()
	NewSumsetIntervalApproximation(10, 0.1).Approximate([]uint64{5})
}
