package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vfunc/vf"
	"github.com/ajroetker/go-vfunc/vf/contrib/compact"
	"github.com/ajroetker/go-vfunc/vf/contrib/kernel"
	"github.com/ajroetker/go-vfunc/vf/contrib/set"
	"github.com/ajroetker/go-vfunc/vf/contrib/sort"
	"github.com/ajroetker/go-vfunc/vf/contrib/stats"
	"github.com/ajroetker/go-vfunc/vf/contrib/workerpool"
)

// load reads the command's inputs, logging what it found.
func (a *app) load(cmd *cobra.Command, args []string) ([][]float64, error) {
	inputs, err := loadInputs(cmd.Context(), args, cmd.InOrStdin(), a.pool.NumWorkers())
	if err != nil {
		return nil, err
	}
	for i, in := range inputs {
		a.log.Printf("input %d: %d values", i, len(in))
	}
	return inputs, nil
}

func inputName(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "-"
}

// header separates the output of several inputs.
func header(w io.Writer, args []string, i, total int) {
	if total > 1 {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n", inputName(args, i))
	}
}

func sorted(x []float64) []float64 {
	s := make([]float64, len(x))
	_ = sort.Sorted(s, x)
	return s
}

// pctLabel names a percentile the way it is usually written: 0.5 is p50
// and 0.999 is p99.9.
func pctLabel(p float64) string {
	return "p" + strconv.FormatFloat(math.Round(p*1e6)/1e4, 'f', -1, 64)
}

// describe splits x across the pool: power sums and extremes of disjoint
// ranges are merged, everything else needs the sorted sample.
func (a *app) describe(x []float64) stats.DescriptiveStats[float64] {
	align := vf.MaxLanes[float64]()
	m := workerpool.Reduce(a.pool, len(x), align, stats.PowerMoments[float64]{},
		func(start, end int) stats.PowerMoments[float64] { return stats.Moments(x[start:end]) },
		func(p, q stats.PowerMoments[float64]) stats.PowerMoments[float64] { return p.Merge(q) })
	type extremes struct{ lo, hi float64 }
	e := workerpool.Reduce(a.pool, len(x), align,
		extremes{vf.HighestValue[float64](), vf.LowestValue[float64]()},
		func(start, end int) extremes {
			lo, hi := kernel.MinMax(x[start:end])
			return extremes{lo, hi}
		},
		func(p, q extremes) extremes { return extremes{min(p.lo, q.lo), max(p.hi, q.hi)} })
	return stats.DescribeMoments(m, e.lo, e.hi)
}

func (a *app) describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [file...]",
		Short: "Print moments, extremes, quartiles and percentiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, x := range inputs {
				header(out, args, i, len(inputs))
				d := a.describe(x)
				s := sorted(x)
				q := stats.QuartilesSorted(s)

				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintf(tw, "n\t%d\n", d.N)
				fmt.Fprintf(tw, "mean\t%g\n", d.Mean)
				fmt.Fprintf(tw, "variance\t%g\n", d.Variance)
				fmt.Fprintf(tw, "stddev\t%g\n", d.StdDev)
				fmt.Fprintf(tw, "skewness\t%g\n", d.Skewness)
				fmt.Fprintf(tw, "kurtosis\t%g\n", d.Kurtosis)
				fmt.Fprintf(tw, "min\t%g\n", d.Min)
				fmt.Fprintf(tw, "q1\t%g\n", q.Q1)
				fmt.Fprintf(tw, "median\t%g\n", q.Median)
				fmt.Fprintf(tw, "q3\t%g\n", q.Q3)
				fmt.Fprintf(tw, "max\t%g\n", d.Max)
				for _, p := range a.cfg.Percentiles {
					v, _ := stats.PercentileSorted(s, p)
					fmt.Fprintf(tw, "%s\t%g\n", pctLabel(p), v)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceP("percentiles", "p", nil, "percentiles in [0, 1] (default from config)")
	return cmd
}

func (a *app) percentileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percentile [file...]",
		Short: "Print interpolated percentiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, x := range inputs {
				header(out, args, i, len(inputs))
				s := sorted(x)
				for _, p := range a.cfg.Percentiles {
					v, err := stats.PercentileSorted(s, p)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\t%g\n", pctLabel(p), v)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceP("percentiles", "p", nil, "percentiles in [0, 1] (default from config)")
	return cmd
}

func (a *app) sortCmd() *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:   "sort [file...]",
		Short: "Print values in ascending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, x := range inputs {
				header(out, args, i, len(inputs))
				s := sorted(x)
				if unique {
					n, err := set.Unique(s, s)
					if err != nil {
						return err
					}
					s = s[:n]
				}
				for _, v := range s {
					fmt.Fprintf(out, "%g\n", v)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop repeated values")
	return cmd
}

func (a *app) filterCmd() *cobra.Command {
	var gt, lt float64
	cmd := &cobra.Command{
		Use:   "filter (--gt X | --lt X) [file...]",
		Short: "Print the values above or below a threshold, in input order",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("gt") == flags.Changed("lt") {
				return fmt.Errorf("exactly one of --gt and --lt is required")
			}
			inputs, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, x := range inputs {
				header(out, args, i, len(inputs))
				dst := make([]float64, len(x))
				var n int
				if flags.Changed("gt") {
					n, err = compact.FilterGT(dst, x, gt)
				} else {
					n, err = compact.FilterLT(dst, x, lt)
				}
				if err != nil {
					return err
				}
				a.log.Printf("kept %d of %d", n, len(x))
				for _, v := range dst[:n] {
					fmt.Fprintf(out, "%g\n", v)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&gt, "gt", 0, "keep values greater than this")
	cmd.Flags().Float64Var(&lt, "lt", 0, "keep values less than this")
	return cmd
}

var rollingStats = map[string]func(dst, src []float64, window int) error{
	"sum":  stats.RollingSum[float64],
	"mean": stats.RollingMean[float64],
	"sma":  stats.SMA[float64],
	"min":  stats.RollingMin[float64],
	"max":  stats.RollingMax[float64],
	"var":  stats.RollingVariance[float64],
	"std":  stats.RollingStd[float64],
	"wma":  stats.WMA[float64],
}

func (a *app) rollingCmd() *cobra.Command {
	var stat string
	cmd := &cobra.Command{
		Use:   "rolling [file...]",
		Short: "Print a sliding-window statistic or moving average",
		Long: `Print a sliding-window statistic. --stat is one of sum, mean, sma,
min, max, var, std, wma or ema. ema uses --alpha and prints one value per
input; the others print len-window+1 values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := rollingStats[stat]
			if !ok && stat != "ema" {
				return fmt.Errorf("unknown statistic %q", stat)
			}
			inputs, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, x := range inputs {
				header(out, args, i, len(inputs))
				var dst []float64
				if stat == "ema" {
					dst = make([]float64, len(x))
					err = stats.EMA(dst, x, a.cfg.Alpha)
				} else {
					dst = make([]float64, max(len(x)-a.cfg.Window+1, 0))
					err = f(dst, x, a.cfg.Window)
				}
				if err != nil {
					return err
				}
				for _, v := range dst {
					fmt.Fprintf(out, "%g\n", v)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&stat, "stat", "mean", "statistic to compute")
	cmd.Flags().IntP("window", "w", 0, "window length (default from config)")
	cmd.Flags().Float64("alpha", 0, "EMA smoothing factor in (0, 1] (default from config)")
	return cmd
}

func (a *app) outliersCmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "outliers [file...]",
		Short: "Print the index and value of every outlier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if method != "z" && method != "iqr" {
				return fmt.Errorf("unknown method %q, want z or iqr", method)
			}
			inputs, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, x := range inputs {
				header(out, args, i, len(inputs))
				mask := make([]bool, len(x))
				var n int
				if method == "z" {
					n, err = stats.ZScoreOutliers(mask, x, a.cfg.ZThreshold)
				} else {
					n, err = stats.IQROutliers(mask, x, a.cfg.IQRK)
				}
				if err != nil {
					return err
				}
				a.log.Printf("%d outliers among %d values", n, len(x))
				for j, bad := range mask {
					if bad {
						fmt.Fprintf(out, "%d\t%g\n", j, x[j])
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "z", "z (z-score) or iqr (Tukey fences)")
	cmd.Flags().Float64("z", 0, "z-score threshold (default from config)")
	cmd.Flags().Float64("k", 0, "IQR fence multiplier (default from config)")
	return cmd
}

func (a *app) regressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regress xfile yfile",
		Short: "Fit y = slope*x + intercept by least squares",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			x, y := inputs[0], inputs[1]
			fit, err := stats.Regress(x, y)
			if err != nil {
				return err
			}
			r, _ := stats.Correlation(x, y)
			cov, _ := stats.Covariance(x, y)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "slope\t%g\n", fit.Slope)
			fmt.Fprintf(tw, "intercept\t%g\n", fit.Intercept)
			fmt.Fprintf(tw, "r2\t%g\n", fit.RSquared)
			fmt.Fprintf(tw, "stderr\t%g\n", fit.StdError)
			fmt.Fprintf(tw, "correlation\t%g\n", r)
			fmt.Fprintf(tw, "covariance\t%g\n", cov)
			return tw.Flush()
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected vector target and float backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc := kernel.Accel()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "target\t%s\n", vf.CurrentName())
			fmt.Fprintf(tw, "width\t%d bytes\n", vf.CurrentWidth())
			fmt.Fprintf(tw, "lanes\tint8=%d float32=%d float64=%d\n",
				vf.MaxLanes[int8](), vf.MaxLanes[float32](), vf.MaxLanes[float64]())
			fmt.Fprintf(tw, "fma\t%t\n", vf.HasFMA())
			fmt.Fprintf(tw, "accel\t%t\n", acc.Enabled)
			if acc.Enabled {
				fmt.Fprintf(tw, "backend\t%s accelerated=%t\n", acc.Architecture, acc.Accelerated)
				fmt.Fprintf(tw, "features\t%s\n", strings.Join(acc.CPUFeatures, " "))
			}
			fmt.Fprintf(tw, "workers\t%d\n", a.pool.NumWorkers())
			return tw.Flush()
		},
	}
}
