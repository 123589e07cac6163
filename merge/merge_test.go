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

package merge

import "testing"

// verifyApproximation checks that approximation is a (1-deltaMul, deltaAdd)
// approximation of expected in both directions: every expected value is
// covered by some value at most deltaAdd+deltaMul*expected below it, and
// every approximation value is itself within budget of some expected value
// it doesn't exceed.
func verifyApproximation(t *testing.T, approximation, expected []uint64, deltaMul float64, deltaAdd uint64) {
	t.Helper()
	for _, b := range expected {
		if !coveredBy(approximation, b, deltaMul, deltaAdd) {
			t.Fatalf("expected value %d not covered by approximation %v (deltaMul=%v deltaAdd=%d)", b, approximation, deltaMul, deltaAdd)
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
			t.Fatalf("approximation value %d (actual) not found near any expected value %v", a, expected)
		}
	}
}

func coveredBy(approximation []uint64, expected uint64, deltaMul float64, deltaAdd uint64) bool {
	for _, a := range approximation {
		if a <= expected && uint64((1-deltaMul)*float64(expected)) <= a+deltaAdd {
			return true
		}
	}
	return false
}

func expectedBoundedSumset(a, b []uint64, t uint64) []uint64 {
	var out []uint64
	for _, i := range a {
		for _, j := range b {
			if i+j <= t {
				out = append(out, i+j)
			}
		}
	}
	return out
}

func rangeU64(start, end uint64) []uint64 {
	out := make([]uint64, 0, end-start)
	for v := start; v < end; v++ {
		out = append(out, v)
	}
	return out
}

func minMax(a, b []uint64) (uint64, uint64) {
	var min, max uint64
	first := true
	for _, v := range append(append([]uint64{}, a...), b...) {
		if first || v < min {
			min = v
		}
		if first || v > max {
			max = v
		}
		first = false
	}
	return min, max
}

func verifyAdditiveMerge(t *testing.T, a, b []uint64, target, delta uint64) {
	t.Helper()
	start, end := minMax(a, b)
	merger := NewAdditiveBoundedMerger(start, end-start, delta, target)
	merged := merger.Merge(a, b)
	expected := expectedBoundedSumset(a, b, target)
	verifyApproximation(t, merged, expected, 0, delta)
}

func TestAdditiveMerge(t *testing.T) {
	verifyAdditiveMerge(t, []uint64{10, 12, 13}, []uint64{14, 15, 16}, 10, 2)
	verifyAdditiveMerge(t, []uint64{10, 12, 13}, []uint64{14, 15, 16}, 10, 1)
	verifyAdditiveMerge(t, []uint64{10, 12, 13}, []uint64{14, 15, 16}, 100, 3)
	verifyAdditiveMerge(t, []uint64{10, 12, 13}, []uint64{14, 15, 16}, 100, 4)
	verifyAdditiveMerge(t, []uint64{10, 12, 13}, []uint64{14, 15, 16}, 100, 5)
	verifyAdditiveMerge(t, []uint64{10, 12, 13}, []uint64{14, 15, 16}, 100, 6)
	verifyAdditiveMerge(t, rangeU64(1000, 1500), rangeU64(1000, 1500), 2000000, 100)
}

func TestAdditiveMergeBarelyApproximate(t *testing.T) {
	verifyAdditiveMerge(t, rangeU64(1500, 1800), rangeU64(1000, 1500), 3000, 1)
}

func verifyMultiplicativeMerge(t *testing.T, a, b []uint64, target uint64, delta float64) {
	t.Helper()
	start, end := minMax(a, b)
	merger := NewMultiplicativeBoundedMerger(start, end-start, delta, target)
	merged := merger.Merge(a, b)
	expected := expectedBoundedSumset(a, b, target)
	verifyApproximation(t, merged, expected, delta, 0)
}

func TestMultiplicativeMerge(t *testing.T) {
	verifyMultiplicativeMerge(t, []uint64{11, 12, 13}, []uint64{14, 15, 16}, 25, 0.1)
	verifyMultiplicativeMerge(t, []uint64{11, 12, 13}, []uint64{14, 15, 16}, 100, 0.1)
}

func TestMultiplicativeMergeBarelyApproximate(t *testing.T) {
	verifyMultiplicativeMerge(t, rangeU64(1500, 1800), rangeU64(1000, 1500), 3000, 0.00001)
}

func TestMultiplicativeMergeSmall(t *testing.T) {
	if got := NewMultiplicativeBoundedMerger(0, 0, 0.1, 25).Merge(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty merge, got %v", got)
	}
	if got := NewMultiplicativeBoundedMerger(1, 0, 0.1, 25).Merge([]uint64{1}, nil); len(got) != 0 {
		t.Fatalf("expected empty merge, got %v", got)
	}
	verifyMultiplicativeMerge(t, []uint64{1}, []uint64{1}, 25, 0.1)
}

func TestPowerOfTwoIteratorCoversRange(t *testing.T) {
	it := newPowerOfTwoIterator(5, 40)
	var got []uint64
	for v, ok := it.next(); ok; v, ok = it.next() {
		got = append(got, v)
	}
	want := []uint64{8, 16, 32}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
