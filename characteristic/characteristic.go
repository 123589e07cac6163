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

// Package characteristic implements the bijection between a set of small
// integers (or integer pairs) and a fixed-length boolean indicator vector —
// the domain that the convolve package's backends operate over.
package characteristic

import "fmt"

// Coder1D encodes/decodes values in [0, Size) as a boolean vector of length
// Size, index i true iff i is present in the set.
type Coder1D struct {
	Size int
}

// NewCoder1D returns a 1-D coder for values in [0, size).
func NewCoder1D(size int) Coder1D {
	return Coder1D{Size: size}
}

// FFTSize is the linear length of the indicator vector this coder produces.
func (c Coder1D) FFTSize() int {
	return c.Size
}

// Encode builds the indicator vector for values. An out-of-range value is a
// precondition violation and panics, per spec: callers must only ever pass
// values that fit the coder's domain.
func (c Coder1D) Encode(values []uint64) []bool {
	bits := make([]bool, c.Size)
	for _, v := range values {
		if v >= uint64(c.Size) {
			panic(fmt.Sprintf("characteristic: value %d out of range [0, %d)", v, c.Size))
		}
		bits[v] = true
	}
	return bits
}

// Decode returns the sorted ascending indices whose bit is set.
func (c Coder1D) Decode(bits []bool) []uint64 {
	var out []uint64
	for i, b := range bits {
		if b {
			out = append(out, uint64(i))
		}
	}
	return out
}

// Coder2D encodes/decodes integer pairs (x, y) with x in [0, XSize) and y in
// [0, YSize) using row-major addressing x*YSize + y.
type Coder2D struct {
	XSize int
	YSize int
}

// NewCoder2D returns a 2-D coder for pairs in [0, xSize) x [0, ySize).
func NewCoder2D(xSize, ySize int) Coder2D {
	return Coder2D{XSize: xSize, YSize: ySize}
}

// FFTSize is the linear length of the flattened indicator vector, XSize*YSize.
func (c Coder2D) FFTSize() int {
	return c.XSize * c.YSize
}

func (c Coder2D) index(x, y uint64) int {
	if x >= uint64(c.XSize) || y >= uint64(c.YSize) {
		panic(fmt.Sprintf("characteristic: pair (%d, %d) out of range [0, %d) x [0, %d)", x, y, c.XSize, c.YSize))
	}
	return int(x)*c.YSize + int(y)
}

// Encode builds the flattened indicator vector for a set of (x, y) pairs.
func (c Coder2D) Encode(values [][2]uint64) []bool {
	bits := make([]bool, c.FFTSize())
	for _, v := range values {
		bits[c.index(v[0], v[1])] = true
	}
	return bits
}

// Decode returns the set of (x, y) pairs whose bit is set, in row-major
// (ascending index) order.
func (c Coder2D) Decode(bits []bool) [][2]uint64 {
	var out [][2]uint64
	for i, b := range bits {
		if !b {
			continue
		}
		x := uint64(i / c.YSize)
		y := uint64(i % c.YSize)
		out = append(out, [2]uint64{x, y})
	}
	return out
}
