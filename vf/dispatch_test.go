package vf

import (
	"errors"
	"math"
	"testing"
)

func TestDispatchWidth(t *testing.T) {
	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Fatalf("CurrentWidth() = %d", CurrentWidth())
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = %q", CurrentName())
	}
	if got, want := MaxLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want)
	}
}

func TestSetWidth(t *testing.T) {
	prev := CurrentWidth()
	restore := SetWidth(64)
	if MaxLanes[int8]() != 64 || MaxLanes[float64]() != 8 {
		t.Errorf("width 64: lanes int8=%d float64=%d", MaxLanes[int8](), MaxLanes[float64]())
	}
	restore()
	if CurrentWidth() != prev {
		t.Errorf("restore: width %d, want %d", CurrentWidth(), prev)
	}

	defer func() {
		if recover() == nil {
			t.Error("SetWidth(24) did not panic")
		}
	}()
	SetWidth(24)
}

type celsius float64

func TestNamedLaneTypes(t *testing.T) {
	if kindOf[celsius]() != kindFloat {
		t.Error("celsius should be a float lane")
	}
	if kindOf[int16]() != kindSigned || kindOf[uint64]() != kindUnsigned {
		t.Error("integer lane kinds")
	}
	v := Set[celsius](-3)
	if got := GetLane(Abs(v), 0); got != 3 {
		t.Errorf("Abs[celsius] = %v", got)
	}
}

func TestArgError(t *testing.T) {
	err := CheckDst("kernel.Scale", "dst", 3, 5)
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("CheckDst: %v does not wrap ErrShortBuffer", err)
	}
	var ae *ArgError
	if !errors.As(err, &ae) || ae.Need != 5 || ae.Have != 3 {
		t.Errorf("CheckDst: got %#v", err)
	}
	if CheckDst("op", "dst", 5, 5) != nil {
		t.Error("CheckDst with enough room returned an error")
	}
	if err := CheckSameLen("kernel.Add", "b", 4, 3); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("CheckSameLen: %v", err)
	}
	if err := InvalidArgument("stats.RollingSum", "window", "%d exceeds length %d", 9, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("InvalidArgument: %v", err)
	}
}

func TestHighestLowestValue(t *testing.T) {
	if HighestValue[int8]() != math.MaxInt8 || LowestValue[int8]() != math.MinInt8 {
		t.Error("int8 limits")
	}
	if HighestValue[int64]() != math.MaxInt64 || LowestValue[int64]() != math.MinInt64 {
		t.Error("int64 limits")
	}
	if HighestValue[uint32]() != math.MaxUint32 || LowestValue[uint32]() != 0 {
		t.Error("uint32 limits")
	}
	if HighestValue[uint64]() != math.MaxUint64 {
		t.Error("uint64 limits")
	}
	if !math.IsInf(float64(HighestValue[float32]()), 1) || !math.IsInf(LowestValue[float64](), -1) {
		t.Error("float limits")
	}
}
