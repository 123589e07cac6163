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

// Package statlog appends benchmark measurements to a CSV file on a timer,
// the way the teacher's SNMP logger periodically flushed transport counters.
// Here the columns are approximation-quality and timing statistics instead
// of protocol counters.
package statlog

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Row is one measurement sample; Fields are looked up by the column names
// given to Start and written in that column order.
type Row struct {
	Fields map[string]float64
}

// Logger periodically appends Rows pushed onto its channel to a CSV file.
// The file name is formatted with time.Now() the same way the teacher's
// SnmpLogger lets an operator embed a timestamp in the path
// (e.g. "./bench-20060102.csv").
type Logger struct {
	columns []string
	rows    chan Row
	done    chan struct{}
}

// Start launches a Logger writing to path, flushing at most once per
// interval. Passing an empty path or non-positive interval disables
// logging and Push becomes a no-op, matching SnmpLogger's
// "path == "" || interval == 0" early return.
func Start(path string, interval time.Duration, columns []string) *Logger {
	l := &Logger{columns: columns, rows: make(chan Row, 128), done: make(chan struct{})}
	if path == "" || interval <= 0 {
		close(l.done)
		return l
	}
	go l.run(path, interval)
	return l
}

// Push enqueues a measurement row. It never blocks the caller for long: the
// channel is buffered, and if the logger was disabled the row is dropped.
func (l *Logger) Push(r Row) {
	select {
	case l.rows <- r:
	default:
	}
}

// Stop signals the background goroutine to exit after flushing pending rows.
func (l *Logger) Stop() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}

func (l *Logger) run(path string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logdir, logfile := filepath.Split(path)
	resolved := logdir + time.Now().Format(logfile)

	var pending []Row
	flush := func() {
		if len(pending) == 0 {
			return
		}
		if err := l.append(resolved, pending); err != nil {
			log.Println("statlog:", err)
		}
		pending = pending[:0]
	}

	for {
		select {
		case r := <-l.rows:
			pending = append(pending, r)
		case <-ticker.C:
			flush()
		case <-l.done:
			for {
				select {
				case r := <-l.rows:
					pending = append(pending, r)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (l *Logger) append(path string, rows []Row) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		if err := w.Write(append([]string{"unix"}, l.columns...)); err != nil {
			return err
		}
	}
	for _, r := range rows {
		record := make([]string, 0, len(l.columns)+1)
		record = append(record, fmt.Sprint(time.Now().Unix()))
		for _, c := range l.columns {
			record = append(record, fmt.Sprintf("%g", r.Fields[c]))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
