package calllog

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const unknownName = "unknown"

// deep renders values for ValueDeep. Addresses and capacities are left out so
// that output is stable between runs.
var deep = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// EnterLine builds the line logged before the target runs.
func (l *Logger) EnterLine(name string, args []any) string {
	return "Entering " + name + " with args " + l.renderArgs(args)
}

// ExitLine builds the line logged after the target returns. A function
// without results, or a Logger configured with OmitReturnValue, produces a
// line without the return value suffix. Several results render as a tuple.
func (l *Logger) ExitLine(name string, results []any) string {
	if l.cfg.OmitReturnValue || len(results) == 0 {
		return "Exiting " + name
	}

	var value string
	if len(results) == 1 {
		value = l.renderValue(results[0])
	} else {
		value = "(" + l.joinValues(results, ", ") + ")"
	}

	return "Exiting " + name + " with return value " + value
}

func (l *Logger) renderArgs(args []any) string {
	if l.cfg.Args == ArgsList {
		return "[" + l.joinValues(args, " ") + "]"
	}
	if len(args) == 1 {
		return "(" + l.renderValue(args[0]) + ",)"
	}
	return "(" + l.joinValues(args, ", ") + ")"
}

func (l *Logger) joinValues(values []any, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = l.renderValue(v)
	}
	return strings.Join(parts, sep)
}

func (l *Logger) renderValue(v any) string {
	switch l.cfg.Values {
	case ValueGoSyntax:
		return fmt.Sprintf("%#v", v)
	case ValueDeep:
		return deep.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// nameOf picks the name logged for fn: the Named override when present,
// otherwise the runtime symbol name.
func (l *Logger) nameOf(fn any) string {
	if l.name != "" {
		return l.name
	}
	return FuncName(fn)
}

// FuncName resolves the symbol name of a function value with the import path
// and package qualifier removed, e.g. "add", "(*Calc).Add" or "Run.func1".
// It returns "unknown" for nil or non-function values.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return unknownName
	}

	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return unknownName
	}

	return shortName(rf.Name())
}

func shortName(full string) string {
	name := full
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" {
		return unknownName
	}
	return name
}
