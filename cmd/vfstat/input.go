package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// parseValues reads numbers separated by whitespace or commas. Text after
// a '#' on a line is ignored.
func parseValues(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	return out, sc.Err()
}

// loadInputs parses every path concurrently, at most limit at a time. The
// path "-" reads stdin, which may appear once.
func loadInputs(ctx context.Context, paths []string, stdin io.Reader, limit int) ([][]float64, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	out := make([][]float64, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r io.Reader = stdin
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			vals, err := parseValues(r)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out[i] = vals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
