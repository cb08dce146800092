package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	invalid bool
}

func (testMessage) Type() string { return "postindex.test.message" }

func (m testMessage) Validate() error {
	if m.invalid {
		return errors.New("invalid message")
	}
	return nil
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !called {
		t.Fatal("wrapped function was not invoked")
	}
}

func TestHandlerExecuteValidationFailure(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatal("exec should not run for invalid messages")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{invalid: true})
	if err == nil {
		t.Fatal("Execute() error = nil, want validation failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Errorf("error category = %v, want validation", err)
	}
}

func TestHandlerExecuteWrapsExecutionError(t *testing.T) {
	cause := errors.New("boom")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return cause
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("Execute() error = nil, want execution failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Errorf("error category = %v, want command", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain lost cause: %v", err)
	}
}

func TestHandlerExecutePreservesWrappedErrors(t *testing.T) {
	wrapped := goerrors.Wrap(errors.New("inner"), goerrors.CategoryValidation, "already tagged")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return wrapped
	})

	err := handler.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Errorf("error category = %v, want the original validation tag", err)
	}
}

func TestHandlerExecuteTimeout(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("Execute() error = nil, want deadline exceeded")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded in chain", err)
	}
}

func TestHandlerExecuteCancelledContext(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("Execute() error = nil, want cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
}

func TestHandlerExecuteNilContext(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Error("exec received nil context")
		}
		return nil
	})

	var nilCtx context.Context
	if err := handler.Execute(nilCtx, testMessage{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestNewHandlerNilFuncPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewHandler(nil) did not panic")
		}
	}()
	NewHandler[testMessage](nil)
}
