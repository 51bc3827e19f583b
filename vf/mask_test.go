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

package vf

import "testing"

func TestMaskQueries(t *testing.T) {
	lanes := MaxLanes[float32]()
	m := FirstN[float32](3)
	if CountTrue(m) != 3 {
		t.Errorf("CountTrue(FirstN(3)) = %d", CountTrue(m))
	}
	if FindFirstTrue(m) != 0 || FindLastTrue(m) != 2 {
		t.Errorf("FindFirstTrue/FindLastTrue = %d/%d", FindFirstTrue(m), FindLastTrue(m))
	}
	if AllTrue(m) || AllFalse(m) {
		t.Error("FirstN(3) reported all or none")
	}
	if !AllTrue(FirstN[float32](lanes + 5)) {
		t.Error("FirstN(lanes+5) should cover every lane")
	}
	none := FirstN[float32](0)
	if !AllFalse(none) || FindFirstTrue(none) != -1 || FindLastTrue(none) != -1 {
		t.Error("FirstN(0) should be empty")
	}
	if got := MaskNot(m); CountTrue(got) != lanes-3 {
		t.Errorf("MaskNot: got %d active, want %d", CountTrue(got), lanes-3)
	}
	if got := MaskAnd(m, MaskFromBits[float32](0b110)).Bits(); got != 0b110 {
		t.Errorf("MaskAnd: got %b", got)
	}
	if !m.GetBit(2) || m.GetBit(3) || m.GetBit(-1) {
		t.Error("GetBit")
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[float64]()
	size := 2*lanes + 3
	var full, tailOffset, tailCount int
	ProcessWithTail[float64](size,
		func(offset int) { full++ },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)
	if full != 2 || tailOffset != 2*lanes || tailCount != 3 {
		t.Errorf("ProcessWithTail: full=%d tail=(%d,%d)", full, tailOffset, tailCount)
	}
	if AlignedSize[float64](size) != 3*lanes {
		t.Errorf("AlignedSize(%d) = %d", size, AlignedSize[float64](size))
	}
	if IsAligned[float64](size) || !IsAligned[float64](2*lanes) {
		t.Error("IsAligned")
	}
}
