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

// Package compressedio wraps a plain file in a snappy stream, the way the
// teacher's CompStream wrapped a net.Conn, for the benchmark subcommands'
// --summary option, which writes a plain-text line per sweep point.
package compressedio

import (
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Writer is a snappy-compressing io.WriteCloser backed by an *os.File.
type Writer struct {
	f *os.File
	w *snappy.Writer
}

// CreateWriter truncates (or creates) path and returns a Writer over it.
func CreateWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "compressedio: create")
	}
	return &Writer{f: f, w: snappy.NewBufferedWriter(f)}, nil
}

// Write implements io.Writer, flushing after every call so partial output
// from a long-running benchmark sweep survives a crash mid-run.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		return n, errors.WithStack(err)
	}
	if err := w.w.Flush(); err != nil {
		return n, errors.WithStack(err)
	}
	return n, nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.w.Close(); err != nil {
		w.f.Close()
		return errors.WithStack(err)
	}
	return w.f.Close()
}

// Reader is a snappy-decompressing io.ReadCloser backed by an *os.File.
type Reader struct {
	f *os.File
	r *snappy.Reader
}

// OpenReader opens path and returns a Reader over it.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "compressedio: open")
	}
	return &Reader{f: f, r: snappy.NewReader(f)}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

var _ io.WriteCloser = (*Writer)(nil)
var _ io.ReadCloser = (*Reader)(nil)
