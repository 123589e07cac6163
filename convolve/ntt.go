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

import "fmt"

// nttPrime is the NTT-friendly modulus: 1073479681 = 2^18*3^2*5*7*13 + 1,
// large enough that every set bit plus the log2(n) butterfly additions never
// approaches it for the transform sizes this package deals in.
const nttPrime uint64 = 1073479681

// nttPrimeFactors are the distinct prime factors of nttPrime-1, used to test
// candidate primitive roots below.
var nttPrimeFactors = []uint64{2, 3, 5, 7, 13}

// maxNTTTransformSize is the largest n for which an n-th root of unity
// exists mod nttPrime: nttPrime-1 = 2^18*3^2*5*7*13, and a radix-2 NTT only
// ever needs the 2-part of that factorization, so n must divide 2^18.
const maxNTTTransformSize = 1 << 18

// NTT convolves boolean vectors via a number-theoretic transform over the
// prime field Z/nttPrime. Working entirely in modular integer arithmetic
// sidesteps the floating-point rounding FFT has to threshold away.
type NTT struct {
	size int
	n    int

	root    uint64 // primitive n-th root of unity mod nttPrime
	rootInv uint64
	nInv    uint64 // modular inverse of n

	twiddle    []uint64 // twiddle[k] = root^k
	twiddleInv []uint64
	bitrev     []int

	bufA []uint64
	bufB []uint64
}

// NewNTT returns an NTT-backed Convoluter for vectors of length size.
func NewNTT(size int) *NTT {
	n := transformSize(size)
	if n > maxNTTTransformSize {
		panic(fmt.Sprintf("convolve: NTT transform size %d exceeds maximum %d supported by nttPrime-1's 2-power factor", n, maxNTTTransformSize))
	}

	g := primitiveRoot(nttPrime, nttPrimeFactors)
	root := modpow(g, (nttPrime-1)/uint64(n), nttPrime)
	rootInv := modinv(root, nttPrime)
	nInv := modinv(uint64(n), nttPrime)

	twiddle := make([]uint64, n/2)
	twiddleInv := make([]uint64, n/2)
	w, wInv := uint64(1), uint64(1)
	for k := range twiddle {
		twiddle[k] = w
		twiddleInv[k] = wInv
		w = mulmod(w, root, nttPrime)
		wInv = mulmod(wInv, rootInv, nttPrime)
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

	return &NTT{
		size:       size,
		n:          n,
		root:       root,
		rootInv:    rootInv,
		nInv:       nInv,
		twiddle:    twiddle,
		twiddleInv: twiddleInv,
		bitrev:     bitrev,
		bufA:       make([]uint64, n),
		bufB:       make([]uint64, n),
	}
}

// Convolute implements Convoluter.
func (t *NTT) Convolute(a, b []bool) []bool {
	fillMod(t.bufA, a)
	fillMod(t.bufB, b)

	t.transform(t.bufA, false)
	t.transform(t.bufB, false)
	for i := range t.bufA {
		t.bufA[i] = mulmod(t.bufA[i], t.bufB[i], nttPrime)
	}
	t.transform(t.bufA, true)

	out := make([]bool, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.bufA[i] != 0
	}
	return out
}

func fillMod(buf []uint64, bits []bool) {
	for i := range buf {
		buf[i] = 0
	}
	for i, b := range bits {
		if b {
			buf[i] = 1
		}
	}
}

// transform runs an in-place iterative radix-2 NTT over buf, whose length
// must equal t.n.
func (t *NTT) transform(buf []uint64, invert bool) {
	n := t.n
	for i, r := range t.bitrev {
		if i < r {
			buf[i], buf[r] = buf[r], buf[i]
		}
	}

	table := t.twiddle
	if invert {
		table = t.twiddleInv
	}

	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		step := n / length
		for i := 0; i < n; i += length {
			for j := 0; j < half; j++ {
				w := table[j*step]
				u := buf[i+j]
				v := mulmod(buf[i+j+half], w, nttPrime)
				buf[i+j] = addmod(u, v, nttPrime)
				buf[i+j+half] = submod(u, v, nttPrime)
			}
		}
	}

	if invert {
		for i := range buf {
			buf[i] = mulmod(buf[i], t.nInv, nttPrime)
		}
	}
}

func addmod(a, b, m uint64) uint64 {
	s := a + b
	if s >= m {
		s -= m
	}
	return s
}

func submod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

func mulmod(a, b, m uint64) uint64 {
	return (a * b) % m
}

func modpow(base, exp, m uint64) uint64 {
	base %= m
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = mulmod(result, base, m)
		}
		base = mulmod(base, base, m)
		exp >>= 1
	}
	return result
}

func modinv(a, m uint64) uint64 {
	return modpow(a, m-2, m)
}

// primitiveRoot returns the smallest g in [2, p) that generates the full
// multiplicative group Z/p*, given the distinct prime factors of p-1.
func primitiveRoot(p uint64, factors []uint64) uint64 {
	for g := uint64(2); g < p; g++ {
		isRoot := true
		for _, q := range factors {
			if modpow(g, (p-1)/q, p) == 1 {
				isRoot = false
				break
			}
		}
		if isRoot {
			return g
		}
	}
	panic("convolve: no primitive root found")
}
