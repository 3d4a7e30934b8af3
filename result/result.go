// Package result provides a success/failure value used to chain game rules
// without exceptions. Once a chain fails, no later stage runs.
package result

import (
	"context"
	"encoding/json"
	"errors"
)

// Result holds either a value or the error that stopped the chain.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail builds a failure carrying a human readable reason.
func Fail[T any](reason string) Result[T] {
	return Result[T]{err: errors.New(reason)}
}

// FailWith builds a failure from an existing error. A nil error is replaced
// by a generic reason so the result is never a success by accident.
func FailWith[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the success payload, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Reason returns the failure reason, "" on success.
func (r Result[T]) Reason() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Unwrap returns the payload and the failure in the usual Go shape.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Then sequences a same-typed step. Failures short-circuit without calling f.
func (r Result[T]) Then(f func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return f(r.value)
}

// OnFailure calls fn with the failure reason and returns r unchanged.
func (r Result[T]) OnFailure(fn func(reason string)) Result[T] {
	if r.err != nil {
		fn(r.err.Error())
	}
	return r
}

// OnSuccess calls fn with the payload and returns r unchanged.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// Map applies f to a success payload. Failures pass through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Success(f(r.value))
}

// FlatMap applies a fallible f to a success payload and flattens the result.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// FlatMapContext is FlatMap for continuations that may block, such as a
// repository call. The continuation runs at most once and never after a
// failure. A cancelled context fails the chain before f is invoked.
func FlatMapContext[T, U any](ctx context.Context, r Result[T], f func(context.Context, T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	if err := ctx.Err(); err != nil {
		return FailWith[U](err)
	}
	return f(ctx, r.value)
}

type wire[T any] struct {
	Success bool   `json:"success"`
	Value   *T     `json:"value,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// MarshalJSON encodes the result for broadcast to clients.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(wire[T]{Reason: r.err.Error()})
	}
	v := r.value
	return json.Marshal(wire[T]{Success: true, Value: &v})
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var w wire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if !w.Success {
		*r = Fail[T](w.Reason)
		return nil
	}
	var v T
	if w.Value != nil {
		v = *w.Value
	}
	*r = Success(v)
	return nil
}
