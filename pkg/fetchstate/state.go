// Package fetchstate models the lifecycle of one asynchronous resource retrieval.
package fetchstate

// Status is the tag of a State.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is exactly one of Idle, Loading, Success(Data) or Failure(Err).
// Data is only meaningful in Success and Err only in Failure.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Idle returns the initial state.
func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Loading returns a state for a request in flight.
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// Succeeded returns a Success state holding data.
func Succeeded[T any](data T) State[T] {
	return State[T]{Status: StatusSuccess, Data: data}
}

// Failed returns a Failure state for err.
func Failed[T any](err error) State[T] {
	return State[T]{Status: StatusFailure, Err: err}
}

func (s State[T]) IsIdle() bool    { return s.Status == StatusIdle }
func (s State[T]) IsLoading() bool { return s.Status == StatusLoading }
func (s State[T]) IsSuccess() bool { return s.Status == StatusSuccess }
func (s State[T]) IsFailure() bool { return s.Status == StatusFailure }

// Message is the human-readable failure message, empty unless Failure.
func (s State[T]) Message() string {
	if s.Status != StatusFailure || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}
