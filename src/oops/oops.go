package oops

import (
	"fmt"

	"github.com/go-stack/stack"
	"github.com/rs/zerolog"
)

// Error wraps another error with a message and the call stack at the point
// where it was created. Use it for unexpected failures (storage faults and
// the like), not for normal business outcomes.
type Error struct {
	Message string
	Wrapped error
	Stack   CallStack
}

func (e *Error) Error() string {
	if e.Wrapped == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func New(wrapped error, format string, args ...interface{}) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Wrapped: wrapped,
		Stack:   Trace(),
	}
}

type CallStack []StackFrame

func (s CallStack) MarshalZerologArray(a *zerolog.Array) {
	for _, frame := range s {
		a.Object(frame)
	}
}

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("file", f.File).
		Int("line", f.Line).
		Str("function", f.Function)
}

// Trace captures the current call stack, minus runtime frames.
func Trace() CallStack {
	trace := stack.Trace().TrimRuntime()
	frames := make(CallStack, len(trace))
	for i, call := range trace {
		callFrame := call.Frame()
		frames[i] = StackFrame{
			File:     callFrame.File,
			Line:     callFrame.Line,
			Function: callFrame.Function,
		}
	}
	return frames
}

var ZerologStackMarshaler = func(err error) interface{} {
	if asOops, ok := err.(*Error); ok {
		return asOops.Stack
	}
	return nil
}
