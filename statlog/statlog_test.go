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

package statlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoggerWritesHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.csv")

	l := Start(path, 20*time.Millisecond, []string{"epsilon_inv", "elapsed_ms"})
	l.Push(Row{Fields: map[string]float64{"epsilon_inv": 10, "elapsed_ms": 1.5}})
	l.Push(Row{Fields: map[string]float64{"epsilon_inv": 20, "elapsed_ms": 2.5}})
	time.Sleep(60 * time.Millisecond)
	l.Stop()
	time.Sleep(10 * time.Millisecond)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header + 2 rows, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "unix,epsilon_inv,elapsed_ms") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestLoggerDisabled(t *testing.T) {
	l := Start("", 0, []string{"x"})
	l.Push(Row{Fields: map[string]float64{"x": 1}})
	l.Stop()
}
