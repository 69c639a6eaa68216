package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, outcome.Success(5))

	out := c.Result()
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, outcome.Fail[int](errors.New("boom")))

	called := false
	c = c.Then(func(ctx context.Context, v int) outcome.Result[int] {
		called = true
		return outcome.Success(v + 1)
	})

	out := c.Result()
	if out.IsSuccess() || out.Err().(error).Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) outcome.Result[int] { return outcome.Success(v * 2) }).
		Result()
	if !out.IsSuccess() || out.Result() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) {
			return 0, errors.New("try-error")
		}).
		Result()
	if out.IsSuccess() || out.Err().(error).Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 5).
		Map(func(ctx context.Context, v int) int { return v + 3 }).
		Result()
	if !out.IsSuccess() || out.Result() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestMapFail_Recover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, outcome.Fail[int]("e")).
		MapFail(func(ctx context.Context, err any) any { return "mapped:" + err.(string) }).
		Result()
	if out.Err() != "mapped:e" {
		t.Fatalf("expected mapped error, got %v", out.Err())
	}

	recovered := Start(ctx, outcome.Fail[int]("e")).
		Recover(func(ctx context.Context, err any) int { return 42 }).
		Result()
	if !recovered.IsSuccess() || recovered.Result() != 42 {
		t.Fatalf("expected recovered success 42, got %v", recovered)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, -1).
		Ensure(func(ctx context.Context, v int) bool { return v > 0 }).
		Result()
	if out.IsSuccess() {
		t.Fatalf("expected validation failure")
	}
	if title, _ := out.Title(); title != "Validation Error" {
		t.Fatalf("expected default title, got %q", title)
	}
}

func TestTee_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	out := FromValue(ctx, 11).
		Tee(func(ctx context.Context, v int) { sCalled = true },
			func(ctx context.Context, err any) { fCalled = true }).
		Result()
	if !out.IsSuccess() || out.Result() != 11 {
		t.Fatalf("expected unchanged success, got %v", out)
	}
	if !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	// nil callbacks should be safe
	out2 := FromValue(ctx, 1).Tee(nil, nil).Result()
	if !out2.IsSuccess() || out2.Result() != 1 {
		t.Fatalf("expected unchanged success result, got %v", out2)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := FromValue(ctx, 3).Finally(
		func(ctx context.Context, v int) int { return v + 100 },
		func(ctx context.Context, err any) int { return -1 },
	)
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Start(ctx, outcome.Fail[int]("x")).Finally(
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, err any) int { return -1 },
	)
	if f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}

func TestTypeChangingSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Then(FromValue(ctx, 4), func(ctx context.Context, v int) outcome.Result[string] {
		return outcome.Success(strconv.Itoa(v * 2))
	})
	out := c.Result()
	if !out.IsSuccess() || out.Result() != "8" {
		t.Fatalf("expected success with '8', got %v", out)
	}

	mapped := Map(c, func(ctx context.Context, s string) int { return len(s) })
	if got := mapped.Unwrap(); got != 1 {
		t.Fatalf("expected length 1, got %d", got)
	}

	final := Finally(mapped,
		func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		func(ctx context.Context, err any) string { return "fail" })
	if final != "ok:1" {
		t.Fatalf("expected 'ok:1', got %q", final)
	}
}

func TestCastStep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var v any = "text"
	ok := Cast[string](FromValue(ctx, v)).Result()
	if !ok.IsSuccess() || ok.Result() != "text" {
		t.Fatalf("expected successful cast, got %v", ok)
	}

	bad := Cast[int](FromValue(ctx, v)).Result()
	if bad.IsSuccess() {
		t.Fatalf("expected cast failure")
	}
	if title, _ := bad.Title(); title != "Type Cast Error" {
		t.Fatalf("expected cast failure title, got %q", title)
	}
}

func TestUnwrapFamily(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := FromValue(ctx, 9).Unwrap(); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := Start(ctx, outcome.Fail[int]("e")).UnwrapOr(5); got != 5 {
		t.Fatalf("expected default 5, got %d", got)
	}
}
