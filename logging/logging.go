package logging

import (
	"strings"

	"github.com/tarmac-project/calllog"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// HostCall defines the waPC host function signature used by logging operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Level selects the host log function a Sink writes to.
type Level string

const (
	LevelInfo  Level = "Info"
	LevelWarn  Level = "Warn"
	LevelError Level = "Error"
	LevelDebug Level = "Debug"
	LevelTrace Level = "Trace"
)

// ParseLevel maps a case-insensitive level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "debug":
		return LevelDebug
	case "trace":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// Client exposes convenience helpers for sending log entries to the host runtime.
type Client interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
	Trace(message string)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig calllog.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  calllog.RuntimeConfig
	hostCall HostCall
}

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (Client, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  cfg.SDKConfig.WithDefaults(),
		hostCall: hostCall,
	}, nil
}

func (c *client) Info(message string)  { c.log(LevelInfo, message) }
func (c *client) Warn(message string)  { c.log(LevelWarn, message) }
func (c *client) Error(message string) { c.log(LevelError, message) }
func (c *client) Debug(message string) { c.log(LevelDebug, message) }
func (c *client) Trace(message string) { c.log(LevelTrace, message) }

// log is best effort; host failures are dropped.
func (c *client) log(lvl Level, message string) {
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, string(lvl), []byte(message))
}

// Sink returns a calllog.Sink that forwards every call log line to c at the
// given level. Unknown levels are sent as Info.
func Sink(c Client, lvl Level) calllog.Sink {
	var emit func(string)
	switch lvl {
	case LevelWarn:
		emit = c.Warn
	case LevelError:
		emit = c.Error
	case LevelDebug:
		emit = c.Debug
	case LevelTrace:
		emit = c.Trace
	default:
		emit = c.Info
	}
	return calllog.SinkFunc(emit)
}
