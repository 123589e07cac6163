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

package main

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// readValues reads whitespace-separated uint16 values from path. An empty
// path or "-" reads from stdin, the way the teacher's "-c" flag treats an
// empty string as "no override" rather than a literal file named "".
func readValues(path string) ([]uint64, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "cli: open input")
		}
		defer f.Close()
		r = f
	}

	var values []uint64
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseUint(scanner.Text(), 10, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "cli: invalid value %q", scanner.Text())
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cli: read input")
	}
	return values, nil
}

// randomValues generates n uniform values in [1, maxValue] for the
// benchmark subcommands, when no --input file is given for a sweep point.
func randomValues(n int, seed int64, maxValue uint64) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(rng.Int63n(int64(maxValue))) + 1
	}
	return values
}
