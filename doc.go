/*
Package calllog wraps functions so that every call is logged on the way in and
on the way out.

A Logger is built from a Config and handed to one of the Wrap helpers together
with the target function. The helper returns a new function of the same type.
Calling it writes an "Entering" line with the function name and arguments,
runs the target, writes an "Exiting" line with the return value, and hands the
results back untouched:

	func add(x, y int) int { return x + y }

	logger, _ := calllog.New(calllog.Config{})
	logged := calllog.Wrap2(logger, add)
	logged(2, 3)
	// Entering add with args (2, 3)
	// Exiting add with return value 5

Typed helpers (Wrap0 to Wrap3, WrapErr0 to WrapErr2, WrapVariadic) cover the
common shapes without reflection. WrapFunc accepts a function of any arity.

Lines go to a Sink. The default sink writes to standard output; the logging
sub-package provides a sink that forwards lines to the Tarmac host runtime,
and the metrics sub-package provides an Observer that records call counts and
durations.

Panics raised by the target are never recovered. They unwind through the
wrapper unchanged and no "Exiting" line is written.
*/
package calllog
