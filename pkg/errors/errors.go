// Package errors provides structured error reporting for the motion runtime.
//
// The runtime follows one rule: animation must never crash the application.
// Library code therefore does not panic on bad input. Failures that a caller
// can act on are returned as errors; everything else is reported through the
// global [ErrorHandler] and the animation degrades silently.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid transition, preset or option.
	KindConfig
	// KindInterpolation indicates values that cannot be interpolated.
	KindInterpolation
	// KindHost indicates a missing or misbehaving host capability.
	KindHost
	// KindGesture indicates a gesture recognizer failure.
	KindGesture
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInterpolation:
		return "interpolation"
	case KindHost:
		return "host"
	case KindGesture:
		return "gesture"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by [MotionError].
var (
	// ErrUnknownEasing is returned when a named easing curve does not exist.
	ErrUnknownEasing = errors.New("unknown easing")
	// ErrInvalidValue is returned when a value cannot be parsed for animation.
	ErrInvalidValue = errors.New("invalid animation value")
	// ErrNoTarget is returned when a host element is required but missing.
	ErrNoTarget = errors.New("no target element")
	// ErrUnknownTag is returned when a component factory has no entry for a tag.
	ErrUnknownTag = errors.New("unknown element tag")
)

// MotionError represents a structured error in the motion runtime.
type MotionError struct {
	// Op is the operation that failed (e.g., "animation.Animate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Key is the motion value key involved, if any.
	Key string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse an animatable value.
type ParseError struct {
	// Input is the text that could not be parsed.
	Input string
	// Want is the expected shape (e.g., "color", "duration").
	Want string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %q", e.Want, e.Input)
}

// Is reports ParseError as an ErrInvalidValue.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidValue
}

// New builds a MotionError wrapping err.
func New(op string, kind ErrorKind, err error) *MotionError {
	return &MotionError{Op: op, Kind: kind, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// ErrorHandler receives errors reported by the motion runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
