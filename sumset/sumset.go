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

// Package sumset is the top-level (1±epsilon)-approximation scheme: given a
// multiset of non-negative integers and an error budget epsilon, it
// bucketises the input onto a logarithmic grid fine enough that an exact
// merge of the buckets' own approximate sumsets reconstructs, within
// epsilon, the sumset of the original multiset. ApproximatePartition is the
// PARTITION front-end built on top of it.
package sumset

import (
	"fmt"
	"math"
	"sort"

	"github.com/kvns-labs/partition/interval"
	"github.com/kvns-labs/partition/multiplicity"
	"github.com/kvns-labs/partition/subsetsum"
)

// maxInputValue is the input ceiling from the wire contract: every value
// must fit in 16 bits.
const maxInputValue = (1 << 16) - 1

// ApproximateSumset returns a (1±epsilon)-approximation of the sumset of
// input: a sorted, duplicate-free sequence that contains 0, and for every
// true subset sum sigma <= Sigma/2 contains some a with
// (1-epsilon)*sigma <= a <= sigma.
func ApproximateSumset(input []uint64, epsilon float64) []uint64 {
	for _, v := range input {
		if v > maxInputValue {
			panic(fmt.Sprintf("sumset: value %d exceeds input ceiling %d", v, maxInputValue))
		}
	}

	if len(input) == 0 {
		return []uint64{0}
	}
	origSigma := sumU64(input)
	if origSigma == 0 {
		return []uint64{0}
	}
	if len(input) == 1 {
		return []uint64{0, input[0]}
	}

	merged, scale, base, base2 := approximateSumsetCore(input, origSigma, epsilon)

	bound := origSigma * 2
	result := map[uint64]struct{}{0: {}}
	for _, v := range merged {
		v = v * base2 / scale * base
		if v <= bound {
			result[v] = struct{}{}
		}
	}
	out := make([]uint64, 0, len(result))
	for v := range result {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// approximateSumsetCore runs the bucketise/approximate/merge pipeline and
// returns the raw merged (not-yet-rescaled) values plus the scale, base and
// base2 rescale factors the caller restores.
func approximateSumsetCore(input []uint64, origSigma uint64, epsilon float64) (merged []uint64, scale, base, base2 uint64) {
	n := float64(len(input))

	epsilon = epsilon / 2
	epsPrim := epsilon / (math.Log2(n/epsilon) + 1)
	epsDivEpsPrim := uint64(math.Ceil(epsilon / epsPrim))
	epsilon = float64(epsDivEpsPrim) * epsPrim
	epsInv := uint64(math.Ceil(1.0 / epsilon))
	epsPrimInv := epsInv * epsDivEpsPrim

	sigma := origSigma
	base = uint64(math.Ceil(float64(sigma) / (100 * n * float64(epsInv))))

	ySet := make([]uint64, 0, len(input))
	for _, v := range input {
		if y := v / base; y != 0 {
			ySet = append(ySet, y)
		}
	}
	if len(ySet) == 0 {
		// Every element rounded away at this scale: no achievable nonzero
		// sum survives the approximation grid.
		return nil, 1, base, 1
	}

	minY := ySet[0]
	for _, y := range ySet[1:] {
		if y < minY {
			minY = y
		}
	}
	scale = ceilDivU64(100*epsInv, minY)
	for i := range ySet {
		ySet[i] *= scale
	}
	sigma *= scale

	zRangeStart := 100 * epsInv

	counts := make(map[ElementApproximation]int, len(ySet))
	for _, y := range ySet {
		counts[NewElementApproximation(zRangeStart, y)]++
	}
	keys := make([]ElementApproximation, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].K != keys[j].K {
			return keys[i].K < keys[j].K
		}
		return keys[i].Z < keys[j].Z
	})
	reduced := multiplicity.ReduceGeneric(counts, keys, func(e ElementApproximation) ElementApproximation { return e.Double() })

	type bucketKey struct {
		k         uint32
		secondary bool
	}
	partition := make(map[bucketKey][]uint64)
	for el, mult := range reduced {
		if mult >= 1 {
			key := bucketKey{el.K, false}
			partition[key] = append(partition[key], el.Z)
		}
		if mult == 2 {
			key := bucketKey{el.K, true}
			partition[key] = append(partition[key], el.Z)
		}
	}
	bucketKeys := make([]bucketKey, 0, len(partition))
	for k := range partition {
		bucketKeys = append(bucketKeys, k)
	}
	sort.Slice(bucketKeys, func(i, j int) bool {
		if bucketKeys[i].k != bucketKeys[j].k {
			return bucketKeys[i].k < bucketKeys[j].k
		}
		return !bucketKeys[i].secondary && bucketKeys[j].secondary
	})

	epsInvForApprox := epsPrimInv * 100
	base2 = uint64(math.Ceil(epsPrim * float64(sigma) / 100))

	ajs := make([][]uint64, 0, len(bucketKeys))
	for _, key := range bucketKeys {
		values := partition[key]
		scaled := make([]uint64, len(values))
		for i, v := range values {
			scaled[i] = v * epsDivEpsPrim
		}
		approx := interval.NewSumsetEpsilonAdditiveApproximation(epsInvForApprox).Approximate(scaled)
		pow2k := uint64(1) << key.k
		bucketOut := make([]uint64, len(approx))
		for i, x := range approx {
			bucketOut[i] = x / epsDivEpsPrim * pow2k / base2
		}
		ajs = append(ajs, bucketOut)
	}

	merged = mergeApproximations(ajs)
	return merged, scale, base, base2
}

// mergeApproximations recursively combines a list of per-bucket approximate
// sumsets into one, splitting in half, recursing, and exactly combining the
// two halves — retaining left, right and the exact cross-merge at every
// level preserves the down-closed property the interval approximator (C6)
// relies on for the same reason.
func mergeApproximations(ajs [][]uint64) []uint64 {
	if len(ajs) == 0 {
		return nil
	}
	if len(ajs) == 1 {
		return ajs[0]
	}
	mid := len(ajs) / 2
	left := mergeApproximations(ajs[:mid])
	right := mergeApproximations(ajs[mid:])
	combined := subsetsum.SubsetSum(left, right)

	out := make([]uint64, 0, len(combined)+len(left)+len(right))
	out = append(out, combined...)
	out = append(out, left...)
	out = append(out, right...)
	return out
}

// ApproximatePartition returns an (1±epsilon)-approximation of the optimal
// two-way PARTITION value: the largest achievable subset sum at most
// Sigma/2, clamped so it never overstates the guaranteed approximation
// slack.
func ApproximatePartition(input []uint64, epsilon float64) float64 {
	approx := ApproximateSumset(input, epsilon)
	t := float64(sumU64(input)) / 2

	var a float64
	for _, v := range approx {
		fv := float64(v)
		if fv <= t && fv > a {
			a = fv
		}
	}

	complement := t * (1.0 - epsilon/2.0)
	if a < complement {
		return a
	}
	return complement
}

func sumU64(values []uint64) uint64 {
	var total uint64
	for _, v := range values {
		total += v
	}
	return total
}

func ceilDivU64(a, b uint64) uint64 {
	return (a + b - 1) / b
}
