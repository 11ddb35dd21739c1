/*
Package metrics provides a client for creating custom metrics through the
Tarmac host runtime, and an Observer that turns wrapped function calls into
metrics.

The client exposes constructors for Counter, Gauge, and Histogram handles,
each backed by protobuf payloads sent over waPC host calls. Inc, Dec and
Observe are best effort and do not return errors; marshal or host-call
failures are dropped.

Plugging an Observer into a calllog.Config counts calls, panics and the
duration of returning calls per wrapped function:

	client, _ := metrics.New(metrics.Config{})
	obs, _ := metrics.NewObserver(client, "fn")
	logger, _ := calllog.New(calllog.Config{Observer: obs})
*/
package metrics
