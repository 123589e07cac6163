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

// Package baseline implements the exact oracles the rest of the module is
// approximating: an exponential-time brute-force sumset by 2^n enumeration,
// and a classical pseudo-polynomial dynamic-programming PARTITION solver. Both exist purely
// as ground truth for tests and the CLI's naive-benchmark/dp-benchmark
// subcommands; nothing in the approximation pipeline calls them.
package baseline

// NaiveSumset returns the exact sumset of values: every total reachable by
// including or excluding each element, by enumerating all 2^len(values)
// subsets. The empty-subset total 0 is kept only when values itself
// contains a 0. The result is unordered. Exponential; only fit for small
// inputs used as test ground truth.
func NaiveSumset(values []uint64) []uint64 {
	seen := make(map[uint64]struct{})
	generateSumset(values, 0, 0, seen)

	hasZero := false
	for _, v := range values {
		if v == 0 {
			hasZero = true
			break
		}
	}
	if !hasZero {
		delete(seen, 0)
	}

	out := make([]uint64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

func generateSumset(values []uint64, index int, currentSum uint64, result map[uint64]struct{}) {
	if index == len(values) {
		result[currentSum] = struct{}{}
		return
	}
	generateSumset(values, index+1, currentSum+values[index], result)
	generateSumset(values, index+1, currentSum, result)
}

// DPPartition returns the largest subset sum at most Sigma/2, computed by
// the textbook O(n*Sigma) subset-sum dynamic program.
func DPPartition(values []uint64) uint64 {
	var sum uint64
	for _, v := range values {
		sum += v
	}
	half := sum / 2

	dp := make([][]bool, len(values)+1)
	for i := range dp {
		dp[i] = make([]bool, half+1)
		dp[i][0] = true
	}

	for i := 1; i <= len(values); i++ {
		for j := uint64(1); j <= half; j++ {
			if values[i-1] > j {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i-1][j] || dp[i-1][j-values[i-1]]
			}
		}
	}

	var best uint64
	for j := uint64(0); j <= half; j++ {
		if dp[len(values)][j] {
			best = j
		}
	}
	return best
}
