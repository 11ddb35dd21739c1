package calllog

// The typed helpers below cover the common function shapes without going
// through reflection. Each one resolves the target name once, at wrap time,
// and panics with ErrNilLogger or ErrNilFunction when either is nil.

// Wrap0 wraps a function that takes no arguments and returns one value.
func Wrap0[R any](l *Logger, fn func() R) func() R {
	name := l.mustName(fn == nil, fn)
	return func() R {
		inv := l.enter(name, nil)
		defer inv.finish()

		r := fn()
		inv.exit([]any{r})
		return r
	}
}

// Wrap1 wraps a function of one argument that returns one value.
func Wrap1[A, R any](l *Logger, fn func(A) R) func(A) R {
	name := l.mustName(fn == nil, fn)
	return func(a A) R {
		inv := l.enter(name, []any{a})
		defer inv.finish()

		r := fn(a)
		inv.exit([]any{r})
		return r
	}
}

// Wrap2 wraps a function of two arguments that returns one value.
func Wrap2[A, B, R any](l *Logger, fn func(A, B) R) func(A, B) R {
	name := l.mustName(fn == nil, fn)
	return func(a A, b B) R {
		inv := l.enter(name, []any{a, b})
		defer inv.finish()

		r := fn(a, b)
		inv.exit([]any{r})
		return r
	}
}

// Wrap3 wraps a function of three arguments that returns one value.
func Wrap3[A, B, C, R any](l *Logger, fn func(A, B, C) R) func(A, B, C) R {
	name := l.mustName(fn == nil, fn)
	return func(a A, b B, c C) R {
		inv := l.enter(name, []any{a, b, c})
		defer inv.finish()

		r := fn(a, b, c)
		inv.exit([]any{r})
		return r
	}
}

// WrapErr0 wraps a function that takes no arguments and returns a value and an error.
func WrapErr0[R any](l *Logger, fn func() (R, error)) func() (R, error) {
	name := l.mustName(fn == nil, fn)
	return func() (R, error) {
		inv := l.enter(name, nil)
		defer inv.finish()

		r, err := fn()
		inv.exit([]any{r, err})
		return r, err
	}
}

// WrapErr1 wraps a function of one argument that returns a value and an error.
// The error is passed back as is and also shows up in the Exiting line.
func WrapErr1[A, R any](l *Logger, fn func(A) (R, error)) func(A) (R, error) {
	name := l.mustName(fn == nil, fn)
	return func(a A) (R, error) {
		inv := l.enter(name, []any{a})
		defer inv.finish()

		r, err := fn(a)
		inv.exit([]any{r, err})
		return r, err
	}
}

// WrapErr2 wraps a function of two arguments that returns a value and an error.
func WrapErr2[A, B, R any](l *Logger, fn func(A, B) (R, error)) func(A, B) (R, error) {
	name := l.mustName(fn == nil, fn)
	return func(a A, b B) (R, error) {
		inv := l.enter(name, []any{a, b})
		defer inv.finish()

		r, err := fn(a, b)
		inv.exit([]any{r, err})
		return r, err
	}
}

// WrapVariadic wraps a variadic function. Each received argument is logged
// individually and the slice is forwarded to fn without copying.
func WrapVariadic[A, R any](l *Logger, fn func(...A) R) func(...A) R {
	name := l.mustName(fn == nil, fn)
	return func(args ...A) R {
		logged := make([]any, len(args))
		for i, a := range args {
			logged[i] = a
		}

		inv := l.enter(name, logged)
		defer inv.finish()

		r := fn(args...)
		inv.exit([]any{r})
		return r
	}
}

// mustName resolves the target name, panicking on a nil logger or target so the
// mistake surfaces where the wrapper is built.
func (l *Logger) mustName(isNil bool, fn any) string {
	if l == nil {
		panic(ErrNilLogger)
	}
	if isNil {
		panic(ErrNilFunction)
	}
	return l.nameOf(fn)
}
