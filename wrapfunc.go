package calllog

import (
	"fmt"
	"reflect"
)

// WrapFunc wraps a function of any signature and returns a function of the
// same type. Variadic arguments are logged one by one, the same way
// WrapVariadic logs them, while the target still receives the slice.
//
// Reflection makes WrapFunc slower than the typed helpers; prefer those for
// hot paths.
func WrapFunc[F any](l *Logger, fn F) (F, error) {
	var zero F
	if l == nil {
		return zero, ErrNilLogger
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return zero, fmt.Errorf("%w: %T", ErrNotFunction, fn)
	}
	if v.IsNil() {
		return zero, ErrNilFunction
	}

	name := l.nameOf(fn)
	variadic := v.Type().IsVariadic()
	wrapped := reflect.MakeFunc(v.Type(), func(in []reflect.Value) []reflect.Value {
		var args []any
		if variadic {
			args = spread(in)
		} else {
			args = interfaces(in)
		}

		inv := l.enter(name, args)
		defer inv.finish()

		var out []reflect.Value
		if variadic {
			out = v.CallSlice(in)
		} else {
			out = v.Call(in)
		}

		inv.exit(interfaces(out))
		return out
	})

	f, ok := wrapped.Interface().(F)
	if !ok {
		// F is an interface the rebuilt function does not satisfy.
		return zero, fmt.Errorf("%w: %T", ErrNotFunction, fn)
	}
	return f, nil
}

// MustWrapFunc is like WrapFunc but panics on error.
func MustWrapFunc[F any](l *Logger, fn F) F {
	f, err := WrapFunc(l, fn)
	if err != nil {
		panic(err)
	}
	return f
}

func interfaces(values []reflect.Value) []any {
	if len(values) == 0 {
		return nil
	}

	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.Interface()
	}
	return out
}

// spread flattens the trailing variadic slice of in into individual values.
func spread(in []reflect.Value) []any {
	fixed, rest := in[:len(in)-1], in[len(in)-1]

	out := make([]any, 0, len(fixed)+rest.Len())
	for _, v := range fixed {
		out = append(out, v.Interface())
	}
	for i := 0; i < rest.Len(); i++ {
		out = append(out, rest.Index(i).Interface())
	}
	return out
}
