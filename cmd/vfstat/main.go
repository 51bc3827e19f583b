// Copyright 2025 go-vfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vfstat computes statistics over columns of numbers with the
// go-vfunc kernels.
//
// Usage:
//
//	vfstat describe data.txt
//	vfstat percentile -p 0.5,0.95 < data.txt
//	vfstat rolling --window 10 --stat mean data.txt
//	vfstat outliers --method iqr --k 3 data.txt
//	vfstat regress x.txt y.txt
//	vfstat info
//
// Inputs are files of numbers separated by whitespace or commas; "-" or
// no file reads stdin. Settings come from flags, then the --config YAML
// file, then built-in defaults.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vfunc/vf/contrib/workerpool"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes one command line and stops the worker pool it started.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer a.close()
	return root.Execute()
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg     Config
	log     *log.Logger
	pool    *workerpool.Pool
	verbose bool
	config  string
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:          "vfstat",
		Short:        "Vectorized statistics over numeric columns",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.config, "config", "", "YAML config file")
	pf.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		a.describeCmd(),
		a.percentileCmd(),
		a.sortCmd(),
		a.filterCmd(),
		a.rollingCmd(),
		a.outliersCmd(),
		a.regressCmd(),
		a.infoCmd(),
	)
	return root, a
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// setup loads the config file, applies any flags the user set and starts
// the worker pool.
func (a *app) setup(cmd *cobra.Command) error {
	var logOut io.Writer = io.Discard
	if a.verbose {
		logOut = cmd.ErrOrStderr()
	}
	a.log = log.New(logOut, "vfstat: ", 0)

	cfg, err := LoadConfig(a.config)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("window") {
		cfg.Window, _ = flags.GetInt("window")
	}
	if flags.Changed("alpha") {
		cfg.Alpha, _ = flags.GetFloat64("alpha")
	}
	if flags.Changed("z") {
		cfg.ZThreshold, _ = flags.GetFloat64("z")
	}
	if flags.Changed("k") {
		cfg.IQRK, _ = flags.GetFloat64("k")
	}
	if flags.Changed("percentiles") {
		cfg.Percentiles, _ = flags.GetFloat64Slice("percentiles")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	if a.config != "" {
		a.log.Printf("loaded config %s", a.config)
	}

	a.pool = workerpool.New(cfg.Workers)
	a.log.Printf("%d workers", a.pool.NumWorkers())
	return nil
}
