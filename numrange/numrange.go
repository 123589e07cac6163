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

// Package numrange parses compact numeric sweep specifications of the form
// "start:end:step", the way the benchmark subcommands describe a range of
// epsilon-inverse or input-length values to iterate over.
package numrange

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Range is an inclusive, stepped sweep over uint64 values: Start, Start+Step,
// Start+2*Step, ... up to End.
type Range struct {
	Start uint64
	End   uint64
	Step  uint64
}

// Parse reads a "start:end:step" specification. A bare "start" (no colons)
// is accepted as a degenerate single-value range. Step must be nonzero
// whenever Start != End.
func Parse(spec string) (Range, error) {
	parts := strings.Split(spec, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return Range{}, errors.Wrapf(err, "numrange: invalid value %q", spec)
		}
		return Range{Start: v, End: v, Step: 1}, nil
	case 3:
		start, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return Range{}, errors.Wrapf(err, "numrange: invalid start in %q", spec)
		}
		end, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return Range{}, errors.Wrapf(err, "numrange: invalid end in %q", spec)
		}
		step, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return Range{}, errors.Wrapf(err, "numrange: invalid step in %q", spec)
		}
		if start > end {
			return Range{}, errors.Errorf("numrange: start %d greater than end %d in %q", start, end, spec)
		}
		if start != end && step == 0 {
			return Range{}, errors.Errorf("numrange: zero step with start != end in %q", spec)
		}
		if step == 0 {
			step = 1
		}
		return Range{Start: start, End: end, Step: step}, nil
	default:
		return Range{}, errors.Errorf("numrange: malformed range %q, want start:end:step or a single value", spec)
	}
}

// Values materialises the swept values.
func (r Range) Values() []uint64 {
	if r.Step == 0 {
		return []uint64{r.Start}
	}
	var out []uint64
	for v := r.Start; v <= r.End; v += r.Step {
		out = append(out, v)
	}
	return out
}
