package calllog

import "errors"

var (
	// ErrNilFunction is returned when the function to wrap is nil.
	ErrNilFunction = errors.New("function to wrap cannot be nil")

	// ErrNilLogger is returned when a nil *Logger is handed to a wrapper.
	ErrNilLogger = errors.New("logger cannot be nil")

	// ErrNotFunction is returned when WrapFunc receives a value that is not a function.
	ErrNotFunction = errors.New("value to wrap is not a function")

	// ErrInvalidArgStyle signals an ArgStyle outside the supported set.
	ErrInvalidArgStyle = errors.New("argument style is invalid")

	// ErrInvalidValueFormat signals a ValueFormat outside the supported set.
	ErrInvalidValueFormat = errors.New("value format is invalid")
)
