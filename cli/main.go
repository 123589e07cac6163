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
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/kvns-labs/partition/convolve"
	"github.com/kvns-labs/partition/subsetsum"
	"github.com/kvns-labs/partition/sumset"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "partition"
	myApp.Usage = "approximate SUMSET and PARTITION over bounded integer multisets"
	myApp.Version = VERSION
	myApp.Commands = []cli.Command{
		sumsetCommand,
		partitionCommand,
		benchmarkCommand,
		naiveBenchmarkCommand,
		dpBenchmarkCommand,
	}
	if err := myApp.Run(os.Args); err != nil {
		checkError(err)
	}
}

var commonFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "input, i",
		Value: "-",
		Usage: "file of whitespace-separated uint16 values, or \"-\" for stdin",
	},
	cli.Float64Flag{
		Name:  "epsilon, e",
		Value: 0.1,
		Usage: "approximation error budget, 0 < epsilon < 1",
	},
	cli.StringFlag{
		Name:  "backend, b",
		Value: "auto",
		Usage: "convolution backend: fft, ntt, or auto (select by CPU features)",
	},
	cli.StringFlag{
		Name:  "log",
		Value: "",
		Usage: "specify a log file to output, default goes to stderr",
	},
	cli.StringFlag{
		Name:  "c",
		Value: "",
		Usage: "config from json file, which will override the command from shell",
	},
}

var sumsetCommand = cli.Command{
	Name:  "sumset",
	Usage: "print a (1-epsilon)-approximation of the input multiset's sumset",
	Flags: commonFlags,
	Action: func(c *cli.Context) error {
		config := configFromFlags(c)
		setupLogging(config)
		selectBackend(config)

		values, err := readValues(config.Input)
		if err != nil {
			return err
		}
		result := sumset.ApproximateSumset(values, config.Epsilon)
		printValues(result)
		return nil
	},
}

var partitionCommand = cli.Command{
	Name:  "partition",
	Usage: "print a (1-epsilon)-approximation of the optimal two-way partition",
	Flags: commonFlags,
	Action: func(c *cli.Context) error {
		config := configFromFlags(c)
		setupLogging(config)
		selectBackend(config)

		values, err := readValues(config.Input)
		if err != nil {
			return err
		}
		result := sumset.ApproximatePartition(values, config.Epsilon)
		fmt.Printf("%g\n", result)
		return nil
	},
}

func configFromFlags(c *cli.Context) Config {
	config := Config{
		Input:   c.String("input"),
		Epsilon: c.Float64("epsilon"),
		Backend: c.String("backend"),
		Log:     c.String("log"),
	}
	if c.String("c") != "" {
		checkError(parseJSONConfig(&config, c.String("c")))
	}
	return config
}

func setupLogging(config Config) {
	if config.Log == "" {
		return
	}
	f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	checkError(err)
	log.SetOutput(f)
}

// selectBackend resolves the --backend flag into subsetsum.Backend, the
// package-level switch every bounded merge consults past its brute-force
// cutover.
func selectBackend(config Config) {
	switch strings.ToLower(config.Backend) {
	case "fft":
		subsetsum.Backend = convolve.BackendFFT
	case "ntt":
		subsetsum.Backend = convolve.BackendNTT
	case "auto", "":
		subsetsum.Backend = convolve.SelectBackend()
	default:
		log.Fatalf("unknown backend %q, want fft, ntt or auto", config.Backend)
	}
}

func printValues(values []uint64) {
	sb := strings.Builder{}
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	fmt.Println(sb.String())
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
