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

package convolve

import "math"

// FFT convolves boolean vectors via a complex-valued radix-2 Cooley-Tukey
// transform. The twiddle and bit-reversal tables are precomputed once in
// NewFFT and reused by every Convolute call.
type FFT struct {
	size int
	n    int

	twiddle []complex128 // twiddle[k] = exp(-2*pi*i*k/n), k in [0, n/2)
	bitrev  []int

	bufA []complex128
	bufB []complex128
}

// NewFFT returns an FFT-backed Convoluter for vectors of length size.
func NewFFT(size int) *FFT {
	n := transformSize(size)

	twiddle := make([]complex128, n/2)
	for k := range twiddle {
		ang := -2 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(ang), math.Sin(ang))
	}

	bitrev := make([]int, n)
	bits := 0
	for 1<<bits < n {
		bits++
	}
	for i := range bitrev {
		r := 0
		x := i
		for b := 0; b < bits; b++ {
			r = (r << 1) | (x & 1)
			x >>= 1
		}
		bitrev[i] = r
	}

	return &FFT{
		size:    size,
		n:       n,
		twiddle: twiddle,
		bitrev:  bitrev,
		bufA:    make([]complex128, n),
		bufB:    make([]complex128, n),
	}
}

// Convolute implements Convoluter.
func (f *FFT) Convolute(a, b []bool) []bool {
	fillComplex(f.bufA, a)
	fillComplex(f.bufB, b)

	f.transform(f.bufA, false)
	f.transform(f.bufB, false)
	for i := range f.bufA {
		f.bufA[i] *= f.bufB[i]
	}
	f.transform(f.bufA, true)

	// The inverse transform is normalized by 1/n (see transform below), so
	// real(f.bufA[i]) is already the true linear-convolution coefficient
	// count, not a value scaled by n — threshold near zero, not near n.
	out := make([]bool, f.size)
	for i := 0; i < f.size; i++ {
		out[i] = real(f.bufA[i]) >= 0.5
	}
	return out
}

func fillComplex(buf []complex128, bits []bool) {
	for i := range buf {
		buf[i] = 0
	}
	for i, b := range bits {
		if b {
			buf[i] = 1
		}
	}
}

// transform runs an in-place iterative radix-2 Cooley-Tukey FFT (forward
// when invert is false) over buf, whose length must equal f.n.
func (f *FFT) transform(buf []complex128, invert bool) {
	n := f.n
	for i, r := range f.bitrev {
		if i < r {
			buf[i], buf[r] = buf[r], buf[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		step := n / length
		for i := 0; i < n; i += length {
			for j := 0; j < half; j++ {
				w := f.twiddle[j*step]
				if invert {
					w = complex(real(w), -imag(w))
				}
				u := buf[i+j]
				v := buf[i+j+half] * w
				buf[i+j] = u + v
				buf[i+j+half] = u - v
			}
		}
	}

	if invert {
		scale := complex(1/float64(n), 0)
		for i := range buf {
			buf[i] *= scale
		}
	}
}
