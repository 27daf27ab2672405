package maybe_test

import (
	"math"
	"strconv"
	"testing"

	. "github.com/npillmayer/intcoll/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()
	//t.Logf("x = %d", x.Just()) // might panic

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	var v int
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	x = Just(10)
	xs := Map(func(n int) string {
		return strconv.Itoa(n * 2)
	}, x)
	var s string
	switch m := xs.Match(); m {
	case m.Just(&s):
	case m.Nothing():
	}
	if s != "20" {
		t.Logf("x * 2 = %q", s)
		t.Error("expected Map(…, Just 10) to return \"20\", didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just(3).Get(); !ok || v != 3 {
		t.Errorf("expected Just(3).Get() to return 3, true; got %d, %v", v, ok)
	}
	if _, ok := Nothing[int]().Get(); ok {
		t.Error("expected Nothing.Get() to return ok=false")
	}
	if !Of(0, false).IsNothing() {
		t.Error("expected Of(0, false) to be Nothing")
	}
	if Of(0, true).IsNothing() {
		t.Error("expected Of(0, true) to be Just(0)")
	}
}

func TestMaybeUncomparablePayload(t *testing.T) {
	x := Just([]int{1, 2})
	var v []int
	switch m := x.Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected Just([1 2]) to match Just, didn't")
	}
	if len(v) != 2 {
		t.Errorf("expected matched slice to have length 2, is %v", v)
	}
	n := Map(func(s []int) int { return len(s) }, x)
	if l, ok := n.Get(); !ok || l != 2 {
		t.Errorf("expected Map(len, Just([1 2])) to be Just(2), is %v", n)
	}
	ys := AndThen(func(s []int) Maybe[map[int]bool] {
		return Just(map[int]bool{s[0]: true})
	}, x)
	if ys.IsNothing() {
		t.Error("expected AndThen on a slice payload to produce a value")
	}
	if !Map(func(s []int) int { return len(s) }, Nothing[[]int]()).IsNothing() {
		t.Error("expected Map over Nothing to be Nothing")
	}
}

func TestMaybeNaNPayload(t *testing.T) {
	x := Just(math.NaN())
	if Map(func(f float64) float64 { return f }, x).IsNothing() {
		t.Error("expected Map(id, Just(NaN)) to be a Just")
	}
	var f float64
	matched := false
	switch m := x.Match(); m {
	case m.Just(&f):
		matched = true
	case m.Nothing():
	}
	if !matched || !math.IsNaN(f) {
		t.Errorf("expected Just(NaN) to match Just with NaN, is %v/%v", matched, f)
	}
}
