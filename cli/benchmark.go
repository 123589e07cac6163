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
	"fmt"
	"log"
	"time"

	"github.com/urfave/cli"

	"github.com/kvns-labs/partition/baseline"
	"github.com/kvns-labs/partition/compressedio"
	"github.com/kvns-labs/partition/numrange"
	"github.com/kvns-labs/partition/statlog"
	"github.com/kvns-labs/partition/sumset"
)

var benchmarkFlags = append(append([]cli.Flag{}, commonFlags...),
	cli.StringFlag{
		Name:  "length-range",
		Value: "1000",
		Usage: "start:end:step sweep over input multiset length",
	},
	cli.StringFlag{
		Name:  "epsilon-inv-range",
		Value: "10",
		Usage: "start:end:step sweep over 1/epsilon, overrides --epsilon per point",
	},
	cli.StringFlag{
		Name:  "statlog",
		Value: "",
		Usage: "collect timing/quality rows to a CSV file, aware of time formatting like ./bench-20060102.csv",
	},
	cli.IntFlag{
		Name:  "statperiod",
		Value: 5,
		Usage: "statlog flush period, in seconds",
	},
	cli.StringFlag{
		Name:  "summary",
		Value: "",
		Usage: "write a final snappy-compressed summary to this path",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "PRNG seed for generated benchmark inputs",
	},
)

var benchmarkCommand = cli.Command{
	Name:  "benchmark",
	Usage: "sweep input length and epsilon, measuring ApproximateSumset timing and quality",
	Flags: benchmarkFlags,
	Action: func(c *cli.Context) error {
		return runBenchmark(c, "approximate", func(values []uint64, epsilon float64) (elapsed time.Duration, size int) {
			start := time.Now()
			result := sumset.ApproximateSumset(values, epsilon)
			return time.Since(start), len(result)
		})
	},
}

var naiveBenchmarkCommand = cli.Command{
	Name:  "naive-benchmark",
	Usage: "sweep input length, measuring exhaustive NaiveSumset timing (exponential, small lengths only)",
	Flags: benchmarkFlags,
	Action: func(c *cli.Context) error {
		return runBenchmark(c, "naive", func(values []uint64, epsilon float64) (elapsed time.Duration, size int) {
			start := time.Now()
			result := baseline.NaiveSumset(values)
			return time.Since(start), len(result)
		})
	},
}

var dpBenchmarkCommand = cli.Command{
	Name:  "dp-benchmark",
	Usage: "sweep input length, measuring dynamic-programming PARTITION timing",
	Flags: benchmarkFlags,
	Action: func(c *cli.Context) error {
		return runBenchmark(c, "dp", func(values []uint64, epsilon float64) (elapsed time.Duration, size int) {
			start := time.Now()
			best := baseline.DPPartition(values)
			return time.Since(start), int(best)
		})
	},
}

// runBenchmark sweeps the cartesian product of --length-range and
// --epsilon-inv-range, invoking measure at every point and pushing a row to
// the statlog logger (and, if requested, a compressed plain-text summary).
func runBenchmark(c *cli.Context, label string, measure func(values []uint64, epsilon float64) (time.Duration, int)) error {
	config := configFromFlags(c)
	config.LengthRange = c.String("length-range")
	config.EpsilonInvRange = c.String("epsilon-inv-range")
	config.StatLog = c.String("statlog")
	config.StatPeriod = c.Int("statperiod")
	config.Seed = c.Int64("seed")
	if path := c.String("c"); path != "" {
		checkError(parseJSONConfig(&config, path))
	}
	summaryPath := c.String("summary")

	setupLogging(config)
	selectBackend(config)

	lengths, err := numrange.Parse(config.LengthRange)
	if err != nil {
		return err
	}
	epsInvs, err := numrange.Parse(config.EpsilonInvRange)
	if err != nil {
		return err
	}

	logger := statlog.Start(config.StatLog, time.Duration(config.StatPeriod)*time.Second, []string{"length", "epsilon", "elapsed_ms", "result_size"})
	defer logger.Stop()

	var summary *compressedio.Writer
	if summaryPath != "" {
		summary, err = compressedio.CreateWriter(summaryPath)
		if err != nil {
			return err
		}
		defer summary.Close()
	}

	log.Printf("%s-benchmark: sweeping %d length value(s) x %d epsilon-inv value(s)", label, len(lengths.Values()), len(epsInvs.Values()))

	index := int64(0)
	for _, n := range lengths.Values() {
		for _, epsInv := range epsInvs.Values() {
			epsilon := 1.0 / float64(epsInv)
			var values []uint64
			if config.Input != "" && config.Input != "-" {
				values, err = readValues(config.Input)
				if err != nil {
					return err
				}
			} else {
				values = randomValues(int(n), config.Seed+index, 65535)
			}
			index++

			elapsed, size := measure(values, epsilon)
			ms := float64(elapsed) / float64(time.Millisecond)

			logger.Push(statlog.Row{Fields: map[string]float64{
				"length":      float64(n),
				"epsilon":     epsilon,
				"elapsed_ms":  ms,
				"result_size": float64(size),
			}})

			line := fmt.Sprintf("length=%d epsilon=%g elapsed_ms=%g result_size=%d\n", n, epsilon, ms, size)
			if summary != nil {
				if _, err := summary.Write([]byte(line)); err != nil {
					return err
				}
			}
			log.Print(line)
		}
	}
	return nil
}
