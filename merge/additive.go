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

// Package merge implements the bounded mergers that turn an exact sumset
// primitive (subsetsum) into an additively or multiplicatively bounded
// approximate one, by rescaling operands onto a coarser grid small enough
// for a single convolution before restoring their original scale.
package merge

import "github.com/kvns-labs/partition/subsetsum"

// AdditiveBoundedMerger merges two value sets restricted to [0, t], keeping
// every merged value within an additive error of delta below its true sum:
// each operand is floored to a multiple of base = ceil(delta/2), so each
// loses less than base.
type AdditiveBoundedMerger struct {
	start  uint64
	length uint64
	t      uint64
	base   uint64
	is2D   bool
}

// NewAdditiveBoundedMerger builds a merger for operands known to lie in
// [start, start+length] (before merging) and restricted to [0, t]
// (after merging), with additive error budget delta. It requires
// length <= start <= t, matching the window discipline the caller (the
// multiplicative merger, or a direct caller) is responsible for upholding.
func NewAdditiveBoundedMerger(start, length, delta, t uint64) *AdditiveBoundedMerger {
	if length > start {
		panic("merge: length must be <= start")
	}
	if start > t {
		panic("merge: start must be <= t")
	}
	base := ceilDiv(delta, 2)
	return &AdditiveBoundedMerger{
		start:  start,
		length: length,
		t:      t,
		base:   base,
		is2D:   fft2DComplexity(start, length, t, delta) < fft1DComplexity(t, delta),
	}
}

// Merge returns the rescaled approximate sumset of a and b, bounded to t.
func (m *AdditiveBoundedMerger) Merge(a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	if m.is2D {
		return m.merge2D(a, b)
	}
	return m.merge1D(a, b)
}

func (m *AdditiveBoundedMerger) merge1D(a, b []uint64) []uint64 {
	bound := ceilDiv(m.t, m.base) * 2
	merged := subsetsum.BoundedSubsetSum(m.based1D(a), m.based1D(b), bound)
	out := make([]uint64, 0, len(merged))
	for _, x := range m.unbased1D(merged) {
		if x <= m.t {
			out = append(out, x)
		}
	}
	return out
}

func (m *AdditiveBoundedMerger) merge2D(a, b []uint64) []uint64 {
	xBound := ceilDiv(m.t, m.start) * 2
	yBound := ceilDiv(m.t*m.length, m.start*m.base)
	if yBound < 1 {
		yBound = 1
	}
	yBound *= 2
	merged := subsetsum.BoundedSubsetSum2D(m.based2D(a), m.based2D(b), xBound, yBound)
	out := make([]uint64, 0, len(merged))
	for _, v := range m.unbased2D(merged) {
		if v <= m.t {
			out = append(out, v)
		}
	}
	return out
}

func (m *AdditiveBoundedMerger) based1D(a []uint64) []uint64 {
	out := make([]uint64, 0, len(a))
	for _, x := range a {
		if x < m.t {
			out = append(out, x/m.base)
		}
	}
	return out
}

func (m *AdditiveBoundedMerger) unbased1D(a []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i, x := range a {
		out[i] = x * m.base
	}
	return out
}

func (m *AdditiveBoundedMerger) based2D(a []uint64) [][2]uint64 {
	out := make([][2]uint64, 0, len(a))
	for _, n := range a {
		if n <= m.t {
			x := n / m.start
			y := (n - x*m.start) / m.base
			out = append(out, [2]uint64{x, y})
		}
	}
	return out
}

func (m *AdditiveBoundedMerger) unbased2D(a [][2]uint64) []uint64 {
	out := make([]uint64, len(a))
	for i, p := range a {
		out[i] = p[0]*m.start + p[1]*m.base
	}
	return out
}

func fft1DComplexity(t, delta uint64) uint64 {
	return ceilDiv(t, delta)
}

func fft2DComplexity(start, size, t, delta uint64) uint64 {
	tf, startf, sizef, deltaf := float64(t), float64(start), float64(size), float64(delta)
	return uint64(tf/startf*tf/startf*sizef/deltaf) + 1
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}
