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

package sumset

import "fmt"

// ElementApproximation represents y as z*2^k with z constrained to
// [rangeStart, 2*rangeStart) — the bucket label the top-level scheme groups
// values by before running the interval approximator on each bucket.
type ElementApproximation struct {
	K uint32
	Z uint64
}

// NewElementApproximation decomposes element (>= rangeStart) into the
// unique (k, z) pair with z in [rangeStart, 2*rangeStart) and
// z*2^k == element/2^k*2^k (k is the largest shift that keeps z in range).
func NewElementApproximation(rangeStart, element uint64) ElementApproximation {
	if element < rangeStart {
		panic(fmt.Sprintf("sumset: element %d below range start %d", element, rangeStart))
	}
	rangeEnd := rangeStart * 2
	var k uint32
	cur := uint64(1)
	for element/cur >= rangeEnd {
		k++
		cur *= 2
	}
	z := element / cur
	if z < rangeStart || z >= rangeEnd {
		panic(fmt.Sprintf("sumset: decomposition invariant violated for element %d", element))
	}
	return ElementApproximation{K: k, Z: z}
}

// Double returns the element approximation for 2*original's reconstructed
// value — same z, exponent one higher. This is what folding two copies of
// the same (k, z) bucket label into one at 2v means in this representation,
// and is the doubling function the top-level scheme's multiplicity
// reduction step uses.
func (e ElementApproximation) Double() ElementApproximation {
	return ElementApproximation{K: e.K + 1, Z: e.Z}
}

// Value reconstructs the original magnitude z*2^k.
func (e ElementApproximation) Value() uint64 {
	return e.Z << e.K
}
