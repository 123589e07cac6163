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

// Package multiplicity collapses a multiset down to at most two copies of
// any value, pushing the excess multiplicity of v into copies of double(v)
// — the step that keeps the approximation pipeline's working sets from
// growing without bound when the input multiset has heavily repeated
// elements. Reduce handles the plain uint64 case; ReduceGeneric is the same
// algorithm parameterised over an arbitrary comparable key and doubling
// function, for the sumset package's bucket-label reduction.
package multiplicity

import "sort"

// Reduce returns, for each distinct value in values, how many copies of it
// (at most 2) and of its doublings survive the reduction. A value with
// multiplicity m > 2 keeps 1 copy (m odd) or 2 copies (m even) of itself
// and recursively folds floor((m-1)/2) copies into 2*value.
func Reduce(values []uint64) map[uint64]int {
	counts := make(map[uint64]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	keys := make([]uint64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return ReduceGeneric(counts, keys, func(v uint64) uint64 { return v * 2 })
}

// ReduceGeneric runs the same fold-excess-multiplicity-into-double(key)
// algorithm as Reduce over an arbitrary comparable key type. counts holds
// the multiplicity of each key before reduction; keysAsc must list counts'
// keys in ascending order (by whatever order the caller's keys are
// naturally compared under) so that folding a key's excess into double(key)
// is visited, if double(key) is itself a counted key, after its own
// original count has already been folded in.
func ReduceGeneric[T comparable](counts map[T]int, keysAsc []T, double func(T) T) map[T]int {
	result := make(map[T]int, len(counts))
	for _, k := range keysAsc {
		reduceSingleElement(k, counts[k], result, double)
	}
	return result
}

func reduceSingleElement[T comparable](number T, mult int, result map[T]int, double func(T) T) {
	if mult == 0 {
		return
	}
	mult += result[number]
	if mult <= 2 {
		result[number] = mult
		return
	}
	if mult%2 == 1 {
		result[number] = 1
	} else {
		result[number] = 2
	}
	reduceSingleElement(double(number), (mult-1)/2, result, double)
}

// Flatten expands a reduced multiplicity map back into an ascending slice
// with each value repeated by its surviving count.
func Flatten(reduced map[uint64]int) []uint64 {
	keys := make([]uint64, 0, len(reduced))
	for k := range reduced {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var out []uint64
	for _, k := range keys {
		for i := 0; i < reduced[k]; i++ {
			out = append(out, k)
		}
	}
	return out
}
