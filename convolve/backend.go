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

import (
	"log"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

var logBackendOnce sync.Once

// SelectBackend picks a default Convoluter backend for the running CPU, the
// same way the teacher's crypt negotiation logs which AES implementation it
// picked. NTT's modular arithmetic is branch-heavy 64-bit integer work, which
// benefits less from wide SIMD than FFT's straight-line float multiplies; on
// a CPU advertising AVX2 we default to FFT, otherwise NTT (narrower integer
// ALU ops pipeline more predictably without it).
func SelectBackend() Backend {
	backend := BackendNTT
	if cpuid.CPU.Supports(cpuid.AVX2) {
		backend = BackendFFT
	}
	logBackendOnce.Do(func() {
		log.Printf("convolve: cpu=%s avx2=%v selected default backend=%s", cpuid.CPU.BrandName, cpuid.CPU.Supports(cpuid.AVX2), backend)
	})
	return backend
}
