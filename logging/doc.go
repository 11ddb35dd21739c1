/*
Package logging offers a client for emitting log entries from Tarmac WebAssembly
functions to the host runtime.

The package exposes a small interface with convenience methods for common log
levels (Info, Warn, Error, Debug, Trace). A client instance handles the host
interaction behind the scenes, so guest code can focus on writing logs.

Sink adapts a Client into a calllog.Sink so wrapped function calls are logged
through the host instead of standard output:

	client, _ := logging.New(logging.Config{})
	logger, _ := calllog.New(calllog.Config{Sink: logging.Sink(client, logging.LevelDebug)})
*/
package logging
