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

package baseline

import (
	"sort"
	"testing"
)

func TestNaiveSumset(t *testing.T) {
	got := NaiveSumset([]uint64{1, 2, 4})
	want := map[uint64]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want set of size %d", got, len(want))
	}
	for _, v := range got {
		if !want[v] {
			t.Fatalf("unexpected value %d in %v", v, got)
		}
	}
}

func TestNaiveSumsetExcludesZeroUnlessPresent(t *testing.T) {
	got := NaiveSumset([]uint64{1, 2})
	for _, v := range got {
		if v == 0 {
			t.Fatalf("0 should not be present: %v", got)
		}
	}
	got = NaiveSumset([]uint64{0, 1, 2})
	found := false
	for _, v := range got {
		if v == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("0 should be present when input contains 0: %v", got)
	}
}

func TestDPPartition(t *testing.T) {
	cases := []struct {
		set  []uint64
		want uint64
	}{
		{[]uint64{1, 2, 3, 4, 5}, 7},
		{[]uint64{1, 2, 3, 4, 5, 6}, 10},
		{[]uint64{1, 2, 3, 4, 5, 6, 7}, 14},
		{[]uint64{1, 2, 3, 4, 5, 6, 7, 8}, 18},
		{[]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 22},
	}
	for _, c := range cases {
		if got := DPPartition(c.set); got != c.want {
			t.Fatalf("DPPartition(%v) = %d, want %d", c.set, got, c.want)
		}
	}
}

func TestDPPartitionUniform(t *testing.T) {
	set := make([]uint64, 1000)
	for i := range set {
		set[i] = 2
	}
	if got := DPPartition(set); got != 1000 {
		t.Fatalf("DPPartition(2x1000) = %d, want 1000", got)
	}
}

func TestDPPartitionMatchesNaiveSumset(t *testing.T) {
	set := []uint64{3, 1, 4, 1, 5, 9, 2, 6}
	var sum uint64
	for _, v := range set {
		sum += v
	}
	half := sum / 2

	sumset := NaiveSumset(set)
	sort.Slice(sumset, func(i, j int) bool { return sumset[i] < sumset[j] })
	var want uint64
	for _, v := range sumset {
		if v <= half {
			want = v
		}
	}
	if got := DPPartition(set); got != want {
		t.Fatalf("DPPartition(%v) = %d, want %d (from naive sumset)", set, got, want)
	}
}
