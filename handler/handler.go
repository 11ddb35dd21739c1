package handler

import (
	"errors"

	"github.com/tarmac-project/calllog"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

// entryPoint is the waPC function name the host invokes.
const entryPoint = "handler"

// ErrHandlerNil is returned when the provided function handler is nil.
var ErrHandlerNil = errors.New("function handler cannot be nil")

// Func is the signature of a Tarmac function entry point.
type Func func([]byte) ([]byte, error)

// Config provides configuration options for handler registration.
type Config struct {
	// Namespace controls the function namespace to use for host callbacks.
	// If empty, calllog.DefaultNamespace is used.
	Namespace string

	// Handler is the function to be registered as the main WebAssembly entry point.
	Handler Func

	// Calls, when set, logs every invocation of Handler.
	Calls *calllog.Logger

	// Register overrides wapc.RegisterFunction.
	Register func(name string, fn wapc.Function)
}

// Handler represents a registered entry point.
type Handler struct {
	runtime calllog.RuntimeConfig
	handler Func
}

// New validates the configuration, wraps the handler when a call logger is
// configured, and registers it with waPC.
func New(config Config) (*Handler, error) {
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	fn := config.Handler
	if config.Calls != nil {
		fn = calllog.WrapErr1[[]byte, []byte](config.Calls.Named(entryPoint), fn)
	}

	register := config.Register
	if register == nil {
		register = wapc.RegisterFunction
	}

	h := &Handler{
		runtime: calllog.RuntimeConfig{Namespace: config.Namespace}.WithDefaults(),
		handler: fn,
	}

	register(entryPoint, wapc.Function(h.handler))

	return h, nil
}

// Config returns the current runtime configuration snapshot.
func (h *Handler) Config() calllog.RuntimeConfig { return h.runtime }

// Invoke calls the registered handler directly, as the host would.
func (h *Handler) Invoke(payload []byte) ([]byte, error) { return h.handler(payload) }
