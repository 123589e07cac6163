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

// Package convolve computes the boolean OR-convolution that the subsetsum
// package builds on: given indicator vectors a and b, produce c where
// c[i] is true iff some j+k == i has a[j] and b[k] both true. Two interchangeable
// backends are provided, FFT (complex) and NTT (prime field); both pad their
// working transform up to the next power of two large enough to avoid
// wraparound, so they return identical results for identical inputs.
package convolve

// Convoluter is the capability every backend exposes. size is fixed at
// construction so a backend can precompute twiddle factors / bit-reversal
// tables once and reuse them across repeated Convolute calls.
type Convoluter interface {
	// Convolute returns the boolean OR-convolution of a and b. Both inputs
	// must have the length the backend was constructed with; the result has
	// that same length, with any convolution index at or beyond it discarded.
	Convolute(a, b []bool) []bool
}

// Backend names a convolution implementation.
type Backend int

const (
	// BackendFFT selects the complex-valued FFT backend.
	BackendFFT Backend = iota
	// BackendNTT selects the prime-field number-theoretic-transform backend.
	BackendNTT
)

func (b Backend) String() string {
	switch b {
	case BackendFFT:
		return "fft"
	case BackendNTT:
		return "ntt"
	default:
		return "unknown"
	}
}

// New constructs a Convoluter of the requested size using the named backend.
func New(backend Backend, size int) Convoluter {
	switch backend {
	case BackendNTT:
		return NewNTT(size)
	default:
		return NewFFT(size)
	}
}

// nextPow2 returns the smallest power of two >= n, with a floor of 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// transformSize picks the internal working length for a convolution backend.
// A linear (non-wrapping) convolution of two length-size vectors needs a
// transform of at least 2*size-1 points; using a strictly larger length here
// is what keeps the FFT and NTT backends in exact agreement (no backend-
// specific circular wraparound artifacts near the top of the output range),
// and is the one deliberate correction this port makes over the originating
// Rust implementation, whose complex-FFT path operated directly at length
// size (circular, period size) while its NTT path padded to a difference
// power of two (circular, period pow2size) — the two were only ever
// approximately consistent. A floor of 16 avoids degenerate tiny transforms.
func transformSize(size int) int {
	if size <= 0 {
		return 16
	}
	n := nextPow2(2*size - 1)
	if n < 16 {
		n = 16
	}
	return n
}
