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

package set

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-vfunc/vf"
	"github.com/ajroetker/go-vfunc/vf/contrib/sort"
)

func TestSetOps(t *testing.T) {
	a := []int32{1, 3, 3, 5, 7, 9}
	b := []int32{2, 3, 5, 5, 10}
	tests := []struct {
		name string
		run  func(dst []int32) (int, error)
		want []int32
	}{
		{"Union", func(dst []int32) (int, error) { return Union(dst, a, b) }, []int32{1, 2, 3, 3, 5, 5, 7, 9, 10}},
		{"Intersect", func(dst []int32) (int, error) { return Intersect(dst, a, b) }, []int32{3, 5}},
		{"Difference", func(dst []int32) (int, error) { return Difference(dst, a, b) }, []int32{1, 3, 7, 9}},
		{"Unique", func(dst []int32) (int, error) { return Unique(dst, a) }, []int32{1, 3, 5, 7, 9}},
	}
	for _, tt := range tests {
		dst := make([]int32, len(a)+len(b))
		n, err := tt.run(dst)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if diff := cmp.Diff(tt.want, dst[:n]); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	dst := make([]int64, 4)
	a := []int64{1, 2}
	n, _ := Union(dst, a, nil)
	assertEqual(t, "Union(a, nil)", a, dst[:n])
	n, _ = Union(dst, nil, a)
	assertEqual(t, "Union(nil, a)", a, dst[:n])
	n, _ = Intersect(dst, a, nil)
	assertEqual(t, "Intersect(a, nil)", nil, dst[:n])
	n, _ = Unique(dst, nil)
	assertEqual(t, "Unique(nil)", nil, dst[:n])
}

func assertEqual(t *testing.T, name string, want, got []int64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s (-want +got):\n%s", name, diff)
	}
}

func TestUniqueOfSorted(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 3))
	src := make([]uint16, 1000)
	for i := range src {
		src[i] = uint16(r.IntN(200))
	}
	sort.Sort(src)
	dst := make([]uint16, len(src))
	n, err := Unique(dst, src)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < n; i++ {
		if dst[i] <= dst[i-1] {
			t.Fatalf("Unique output not strictly increasing at %d", i)
		}
	}
	for _, v := range dst[:n] {
		if !Contains(src, v) {
			t.Fatalf("Unique produced %d, not in input", v)
		}
	}
	if want := len(slices.Compact(slices.Clone(src))); n != want {
		t.Errorf("Unique count = %d, want %d", n, want)
	}

	// In place.
	n2, _ := Unique(src, src)
	if !slices.Equal(src[:n2], dst[:n]) {
		t.Error("Unique in place differs")
	}
}

func TestContains(t *testing.T) {
	s := []float64{-2, 0.5, 1, 1, 8}
	for _, x := range s {
		if !Contains(s, x) {
			t.Errorf("Contains(%v) = false", x)
		}
	}
	for _, x := range []float64{-3, 0, 2, 9} {
		if Contains(s, x) {
			t.Errorf("Contains(%v) = true", x)
		}
	}
	if Contains([]float64{}, 1) {
		t.Error("Contains(empty) = true")
	}
}

func TestShortDst(t *testing.T) {
	a := []int32{1, 2, 3}
	if _, err := Union(make([]int32, 5), a, a); !errors.Is(err, vf.ErrShortBuffer) {
		t.Errorf("Union short dst: %v", err)
	}
	if _, err := Intersect(make([]int32, 2), a, a); !errors.Is(err, vf.ErrShortBuffer) {
		t.Errorf("Intersect short dst: %v", err)
	}
}
