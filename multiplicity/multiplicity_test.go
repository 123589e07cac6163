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

package multiplicity

import (
	"reflect"
	"testing"
)

func TestReduceMultiplicityExample1(t *testing.T) {
	set := []uint64{1, 2, 2, 2, 4, 4, 3, 3, 3, 1, 3, 3, 3, 3}
	got := Flatten(Reduce(set))
	want := []uint64{1, 1, 2, 3, 4, 6, 8, 12}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten(Reduce(%v)) = %v, want %v", set, got, want)
	}
}

func TestReduceMultiplicityExample2(t *testing.T) {
	set := []uint64{1, 1, 1, 2, 2, 4, 4, 8, 8, 16, 16, 32, 32, 64, 64, 128, 128}
	got := Flatten(Reduce(set))
	want := []uint64{1, 2, 4, 8, 16, 32, 64, 128, 256}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten(Reduce(%v)) = %v, want %v", set, got, want)
	}
}

func TestReduceEmpty(t *testing.T) {
	if got := Reduce(nil); len(got) != 0 {
		t.Fatalf("expected empty reduction, got %v", got)
	}
}

func TestReduceSingleton(t *testing.T) {
	got := Flatten(Reduce([]uint64{5}))
	want := []uint64{5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReduceAtMostTwoCopiesPerValue(t *testing.T) {
	for mult := 0; mult <= 10; mult++ {
		set := make([]uint64, mult)
		for i := range set {
			set[i] = 7
		}
		reduced := Reduce(set)
		if n := reduced[7]; n > 2 {
			t.Fatalf("multiplicity %d of value 7 reduced to %d copies, want <= 2", mult, n)
		}
	}
}

type level struct {
	tier int
	name string
}

func TestReduceGenericCustomKey(t *testing.T) {
	counts := map[level]int{{0, "a"}: 5}
	keys := []level{{0, "a"}}
	double := func(l level) level { return level{tier: l.tier + 1, name: l.name} }

	reduced := ReduceGeneric(counts, keys, double)
	total := 0
	for _, n := range reduced {
		if n > 2 {
			t.Fatalf("reduced count %d exceeds 2", n)
		}
		total += n
	}
	if total == 0 {
		t.Fatal("expected some surviving copies")
	}
	if n, ok := reduced[level{0, "a"}]; !ok || n != 1 {
		t.Fatalf("expected 1 surviving copy at tier 0, got %d (ok=%v)", n, ok)
	}
	if n, ok := reduced[level{1, "a"}]; !ok || n != 2 {
		t.Fatalf("expected 2 surviving copies at tier 1, got %d (ok=%v)", n, ok)
	}
}
