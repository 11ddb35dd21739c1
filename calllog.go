package calllog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ArgStyle controls how call arguments are rendered in the Entering line.
type ArgStyle int

const (
	// ArgsTuple renders arguments as a single parenthesised value, e.g. (2, 3).
	// A lone argument keeps a trailing comma, (21,), so it still reads as a
	// tuple rather than a grouped value.
	ArgsTuple ArgStyle = iota

	// ArgsList renders arguments as a bracketed list, e.g. [2 3].
	ArgsList
)

// ValueFormat controls how individual argument and result values are rendered.
type ValueFormat int

const (
	// ValuePlain renders values with the %v verb.
	ValuePlain ValueFormat = iota

	// ValueGoSyntax renders values with the %#v verb.
	ValueGoSyntax

	// ValueDeep renders values with go-spew, following pointers.
	ValueDeep
)

// Sink receives fully formatted call log lines.
type Sink interface {
	Log(line string)
}

// SinkFunc adapts a plain function into a Sink.
type SinkFunc func(line string)

// Log calls f(line).
func (f SinkFunc) Log(line string) { f(line) }

// WriterSink returns a Sink that writes each line, newline terminated, to w.
// Write errors are ignored.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(line string) {
		_, _ = fmt.Fprintln(w, line)
	})
}

// Observer is notified around each wrapped call. Done is called once for
// every Start, including when the target panics; returned is false in that
// case and the panic keeps unwinding after Done.
type Observer interface {
	Start(name string)
	Done(name string, elapsed time.Duration, returned bool)
}

// Config controls how a Logger renders and emits call log lines.
type Config struct {
	// Sink receives the Entering and Exiting lines. Defaults to standard output.
	Sink Sink

	// Args selects how the argument list is rendered. Defaults to ArgsTuple.
	Args ArgStyle

	// Values selects how each value is rendered. Defaults to ValuePlain.
	Values ValueFormat

	// OmitReturnValue drops the "with return value" suffix from Exiting lines.
	OmitReturnValue bool

	// Observer, when set, is notified around every call.
	Observer Observer
}

// Logger wraps functions with entry and exit logging. A Logger is immutable
// and safe to share between goroutines.
type Logger struct {
	cfg  Config
	name string
	now  func() time.Time
}

// New validates cfg and creates a Logger.
func New(cfg Config) (*Logger, error) {
	if cfg.Args != ArgsTuple && cfg.Args != ArgsList {
		return nil, fmt.Errorf("%w: %d", ErrInvalidArgStyle, cfg.Args)
	}

	if cfg.Values < ValuePlain || cfg.Values > ValueDeep {
		return nil, fmt.Errorf("%w: %d", ErrInvalidValueFormat, cfg.Values)
	}

	if cfg.Sink == nil {
		cfg.Sink = WriterSink(os.Stdout)
	}

	return &Logger{cfg: cfg, now: time.Now}, nil
}

// Default returns a Logger that writes to standard output with default formatting.
func Default() *Logger {
	l, _ := New(Config{})
	return l
}

// Named returns a copy of l that reports every wrapped function under name
// instead of the name resolved from the runtime. An empty name restores
// runtime resolution.
func (l *Logger) Named(name string) *Logger {
	c := *l
	c.name = name
	return &c
}

// Config returns the configuration snapshot the Logger was created with.
func (l *Logger) Config() Config { return l.cfg }

// call tracks one invocation of a wrapped function.
type call struct {
	l        *Logger
	name     string
	start    time.Time
	returned bool
}

// enter logs the Entering line and notifies the observer.
func (l *Logger) enter(name string, args []any) call {
	l.cfg.Sink.Log(l.EnterLine(name, args))
	if l.cfg.Observer != nil {
		l.cfg.Observer.Start(name)
	}
	return call{l: l, name: name, start: l.now()}
}

// exit logs the Exiting line. It is only reached when the target returns.
func (c *call) exit(results []any) {
	c.returned = true
	c.l.cfg.Sink.Log(c.l.ExitLine(c.name, results))
}

// finish is deferred by every wrapper so the observer hears about the call
// even while a panic unwinds. It does not recover.
func (c *call) finish() {
	if c.l.cfg.Observer != nil {
		c.l.cfg.Observer.Done(c.name, c.l.now().Sub(c.start), c.returned)
	}
}
