/*
Package hostmock provides a pretend host for waPC calls.

It is meant for tests that need to check exactly what a component sends to
the Tarmac host, such as the log lines emitted by a logging.Sink or the metric
updates made by a metrics.Observer, without a real host running.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "logging",
	  ExpectedFunction:   "Info",
	  PayloadValidator: func(p []byte) error {
	    // assert on the payload here
	    return nil
	  },
	})

	client, _ := logging.New(logging.Config{HostCall: m.HostCall})
	client.Info("hello")
	calls := m.Calls()

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces any non-blank ExpectedNamespace, Capability
    and Function and runs PayloadValidator when provided. Response (when set)
    provides the return bytes; otherwise it returns nil.
  - Every call is recorded and available through Calls, whatever its outcome.
*/
package hostmock
