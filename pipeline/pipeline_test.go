package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kbukum/peoplequery/errors"
)

func TestFromSlice_Collect(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	got, err := Collect(context.Background(), Empty[int]())
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromSlice_ReEvaluates(t *testing.T) {
	p := FromSlice([]int{1, 2})
	for i := 0; i < 2; i++ {
		got, err := Collect(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		if !intSliceEqual(got, []int{1, 2}) {
			t.Errorf("evaluation %d: got %v", i, got)
		}
	}
}

func TestFromSlice_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, FromSlice([]int{1, 2, 3}))
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFromFunc_CalledPerEvaluation(t *testing.T) {
	calls := 0
	p := FromFunc(func(_ context.Context) Iterator[int] {
		calls++
		return &sliceIter[int]{items: []int{calls}}
	})
	if calls != 0 {
		t.Fatal("factory must not run before a terminal")
	}
	first, _ := Collect(context.Background(), p)
	second, _ := Collect(context.Background(), p)
	if calls != 2 || first[0] != 1 || second[0] != 2 {
		t.Errorf("calls=%d first=%v second=%v", calls, first, second)
	}
}

func TestLazy(t *testing.T) {
	calls := 0
	p := Lazy(func(_ context.Context) (string, bool, error) {
		calls++
		return "value", true, nil
	})
	if calls != 0 {
		t.Fatal("Lazy must not call fn before a terminal")
	}
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "value" || calls != 1 {
		t.Errorf("got %v after %d calls", got, calls)
	}
}

func TestLazy_Absent(t *testing.T) {
	p := Lazy(func(_ context.Context) (int, bool, error) { return 0, false, nil })
	_, ok, err := First(context.Background(), p)
	if err != nil || ok {
		t.Errorf("expected absent, got ok=%v err=%v", ok, err)
	}
}

func TestFail(t *testing.T) {
	boom := stderrors.New("boom")
	_, err := Collect(context.Background(), Fail[int](boom))
	if err != boom {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestMap(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	strs := Map(p, func(_ context.Context, n int) (string, error) {
		return fmt.Sprintf("#%d", n), nil
	})
	got, err := Collect(context.Background(), strs)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#1", "#2", "#3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestMap_Error(t *testing.T) {
	bad := stderrors.New("bad value")
	p := FromSlice([]int{1, 2, 3})
	fail := Map(p, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, bad
		}
		return n, nil
	})
	got, err := Collect(context.Background(), fail)
	if !errors.HasCode(err, errors.ErrCodeTransformFailed) {
		t.Fatalf("expected TRANSFORM_FAILED, got %v", err)
	}
	if !stderrors.Is(err, bad) {
		t.Error("expected cause to be preserved")
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1] before error, got %v", got)
	}
}

func TestMap_Panic(t *testing.T) {
	p := Map(FromSlice([]int{0}), func(_ context.Context, n int) (int, error) {
		return 10 / n, nil
	})
	_, err := Collect(context.Background(), p)
	if !errors.HasCode(err, errors.ErrCodeTransformFailed) {
		t.Fatalf("expected TRANSFORM_FAILED, got %v", err)
	}
	if !strings.Contains(err.Error(), "panic in transformation") {
		t.Errorf("expected panic description, got %q", err.Error())
	}
}

func TestMap_NotCalledOnEmpty(t *testing.T) {
	calls := 0
	p := Map(Empty[int](), func(_ context.Context, n int) (int, error) {
		calls++
		return n, nil
	})
	if _, _, err := First(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("expected no calls, got %d", calls)
	}
}

func TestFilter(t *testing.T) {
	p := FromSlice([]int{1, 2, 3, 4, 5, 6})
	evens := Filter(p, func(n int) bool { return n%2 == 0 })
	got, err := Collect(context.Background(), evens)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestFilter_None(t *testing.T) {
	p := FromSlice([]int{1, 3, 5})
	evens := Filter(p, func(n int) bool { return n%2 == 0 })
	got, err := Collect(context.Background(), evens)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestTap_Error(t *testing.T) {
	var tapped []int
	p := FromSlice([]int{1, 2, 3})
	failing := Tap(p, func(_ context.Context, n int) error {
		tapped = append(tapped, n)
		if n == 2 {
			return stderrors.New("tap failed")
		}
		return nil
	})
	_, err := Collect(context.Background(), failing)
	if err == nil || !strings.Contains(err.Error(), "tap failed") {
		t.Errorf("expected tap error, got %v", err)
	}
	if !intSliceEqual(tapped, []int{1, 2}) {
		t.Errorf("tapped = %v, want [1 2]", tapped)
	}
}

func TestOnError_ReportsOnce(t *testing.T) {
	var seen []error
	boom := stderrors.New("boom")
	p := OnError(Fail[int](boom), func(_ context.Context, err error) {
		seen = append(seen, err)
	})
	iter := p.Iter(context.Background())
	defer iter.Close()
	_, _, err1 := iter.Next(context.Background())
	_, _, _ = iter.Next(context.Background())
	if err1 != boom {
		t.Errorf("expected boom to pass through, got %v", err1)
	}
	if len(seen) != 1 {
		t.Errorf("expected one report, got %v", seen)
	}
}

func TestOnError_SilentOnSuccess(t *testing.T) {
	called := false
	p := OnError(FromSlice([]int{1}), func(context.Context, error) { called = true })
	if _, err := Collect(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("OnError must not run without an error")
	}
}

func TestTake_StopsPulling(t *testing.T) {
	pulled := 0
	src := Tap(FromSlice([]int{1, 2, 3, 4}), func(context.Context, int) error {
		pulled++
		return nil
	})
	got, err := Collect(context.Background(), Take(src, 2))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
	if pulled != 2 {
		t.Errorf("expected 2 pulls, got %d", pulled)
	}
}

func TestTake_Zero(t *testing.T) {
	got, err := Collect(context.Background(), Take(FromSlice([]int{1}), 0))
	if err != nil || len(got) != 0 {
		t.Errorf("expected empty, got %v err=%v", got, err)
	}
}

func TestReduce(t *testing.T) {
	p := FromSlice([]int{1, 2, 3, 4, 5})
	sum := Reduce(p, func() int { return 0 }, func(acc, n int) int { return acc + n })
	got, err := Collect(context.Background(), sum)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 15 {
		t.Errorf("expected [15], got %v", got)
	}
}

func TestReduce_Empty(t *testing.T) {
	sum := Reduce(Empty[int](), func() int { return 42 }, func(acc, n int) int { return acc + n })
	got, err := Collect(context.Background(), sum)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("expected [42] (initial value), got %v", got)
	}
}

func TestReduce_FreshAccumulatorPerEvaluation(t *testing.T) {
	p := Reduce(FromSlice([]int{1, 2}), func() []int { return make([]int, 0) },
		func(acc []int, n int) []int { return append(acc, n) })
	first, _, _ := First(context.Background(), p)
	second, _, _ := First(context.Background(), p)
	if !intSliceEqual(first, []int{1, 2}) || !intSliceEqual(second, []int{1, 2}) {
		t.Errorf("first=%v second=%v", first, second)
	}
}

func TestReduce_Error(t *testing.T) {
	boom := stderrors.New("boom")
	p := Reduce(Fail[int](boom), func() int { return 0 }, func(acc, n int) int { return acc + n })
	got, err := Collect(context.Background(), p)
	if err != boom || len(got) != 0 {
		t.Errorf("expected boom and no values, got %v err=%v", got, err)
	}
}

func TestFirst_DoesNotPullRest(t *testing.T) {
	pulled := 0
	src := Tap(FromSlice([]int{7, 8, 9}), func(context.Context, int) error {
		pulled++
		return nil
	})
	v, ok, err := First(context.Background(), src)
	if err != nil || !ok || v != 7 {
		t.Fatalf("First = %d ok=%v err=%v", v, ok, err)
	}
	if pulled != 1 {
		t.Errorf("expected 1 pull, got %d", pulled)
	}
}

func TestDrain_Run(t *testing.T) {
	var collected []int
	r := Drain(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		collected = append(collected, n)
		return nil
	})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(collected, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", collected)
	}
}

func TestForEach_SinkError(t *testing.T) {
	stop := stderrors.New("stop")
	var seen []int
	err := ForEach(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		seen = append(seen, n)
		if n == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("expected stop, got %v", err)
	}
	if !intSliceEqual(seen, []int{1, 2}) {
		t.Errorf("seen = %v", seen)
	}
}

type closeCounter struct {
	Iterator[int]
	closed *int
}

func (c closeCounter) Close() error {
	*c.closed++
	return c.Iterator.Close()
}

func TestTerminals_CloseSource(t *testing.T) {
	closed := 0
	src := FromFunc(func(_ context.Context) Iterator[int] {
		return closeCounter{Iterator: &sliceIter[int]{items: []int{1, 2}}, closed: &closed}
	})
	chained := Take(Filter(Map(src, func(_ context.Context, n int) (int, error) { return n, nil }),
		func(int) bool { return true }), 1)

	ctx := context.Background()
	_, _ = Collect(ctx, chained)
	_, _, _ = First(ctx, chained)
	_ = ForEach(ctx, chained, func(context.Context, int) error { return nil })
	if closed != 3 {
		t.Errorf("expected source closed once per evaluation, got %d", closed)
	}
}

func TestChained_Pipeline(t *testing.T) {
	var tapped []int
	p := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	doubled := Map(p, func(_ context.Context, n int) (int, error) { return n * 2, nil })
	evens := Filter(doubled, func(n int) bool { return n%4 == 0 })
	observed := Tap(evens, func(_ context.Context, n int) error {
		tapped = append(tapped, n)
		return nil
	})
	sum := Reduce(observed, func() int { return 0 }, func(acc, n int) int { return acc + n })

	got, err := Collect(context.Background(), sum)
	if err != nil {
		t.Fatal(err)
	}
	// doubled: 2..20, %4==0: 4,8,12,16,20, sum 60
	if len(got) != 1 || got[0] != 60 {
		t.Errorf("expected [60], got %v", got)
	}
	if !intSliceEqual(tapped, []int{4, 8, 12, 16, 20}) {
		t.Errorf("tapped = %v, want [4 8 12 16 20]", tapped)
	}
}

// --- helpers ---

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
