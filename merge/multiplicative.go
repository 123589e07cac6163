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

import "math"

// MultiplicativeBoundedMerger merges two value sets restricted to [0, t],
// keeping every merged value within a multiplicative error of delta of its
// true sum. It covers [start, t] with a dyadic sequence of windows [r, 6r)
// and delegates each to an AdditiveBoundedMerger with an additive error
// budget scaled to that window.
type MultiplicativeBoundedMerger struct {
	start  uint64
	length uint64
	delta  float64
	t      uint64
}

// NewMultiplicativeBoundedMerger builds a merger for operands known to lie
// in [start, start+length], restricted to [0, t], with multiplicative
// error budget delta. It requires length <= start <= t.
func NewMultiplicativeBoundedMerger(start, length uint64, delta float64, t uint64) *MultiplicativeBoundedMerger {
	if length > start {
		panic("merge: length must be <= start")
	}
	if start > t {
		panic("merge: start must be <= t")
	}
	return &MultiplicativeBoundedMerger{start: start, length: length, delta: delta, t: t}
}

// Merge returns the rescaled approximate sumset of a and b, bounded to t.
func (m *MultiplicativeBoundedMerger) Merge(a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	result := make(map[uint64]struct{})
	it := newPowerOfTwoIterator(ceilDiv(m.start, 6), m.t)
	for r, ok := it.next(); ok; r, ok = it.next() {
		for _, v := range m.mergeInterval(a, b, r) {
			result[v] = struct{}{}
		}
	}
	out := make([]uint64, 0, len(result))
	for v := range result {
		out = append(out, v)
	}
	return out
}

func (m *MultiplicativeBoundedMerger) mergeInterval(a, b []uint64, r uint64) []uint64 {
	additiveDelta := uint64(math.Ceil(m.delta * float64(r)))
	merger := NewAdditiveBoundedMerger(m.start, m.length, additiveDelta, 6*r)
	merged := merger.Merge(a, b)
	out := make([]uint64, 0, len(merged))
	for _, x := range merged {
		if x >= r && x <= m.t {
			out = append(out, x)
		}
	}
	return out
}

// powerOfTwoIterator walks the smallest power of two >= start, doubling
// until it exceeds limit.
type powerOfTwoIterator struct {
	current uint64
	limit   uint64
}

func newPowerOfTwoIterator(start, limit uint64) *powerOfTwoIterator {
	current := uint64(1)
	for current < start {
		current *= 2
	}
	return &powerOfTwoIterator{current: current, limit: limit}
}

func (p *powerOfTwoIterator) next() (uint64, bool) {
	if p.current > p.limit {
		return 0, false
	}
	r := p.current
	p.current *= 2
	return r, true
}
