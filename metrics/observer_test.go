package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tarmac-project/calllog"
	"github.com/tarmac-project/calllog/hostmock"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
)

// decoded is a readable form of one metrics host call.
type decoded struct {
	function string
	name     string
	action   string
	value    float64
}

func decode(t *testing.T, calls []hostmock.Call) []decoded {
	t.Helper()

	out := make([]decoded, 0, len(calls))
	for _, c := range calls {
		d := decoded{function: c.Function}
		switch c.Function {
		case fnCounter:
			var m proto.MetricsCounter
			if err := m.UnmarshalVT(c.Payload); err != nil {
				t.Fatalf("failed to decode counter: %v", err)
			}
			d.name = m.GetName()
		case fnGauge:
			var m proto.MetricsGauge
			if err := m.UnmarshalVT(c.Payload); err != nil {
				t.Fatalf("failed to decode gauge: %v", err)
			}
			d.name, d.action = m.GetName(), m.GetAction()
		case fnHistogram:
			var m proto.MetricsHistogram
			if err := m.UnmarshalVT(c.Payload); err != nil {
				t.Fatalf("failed to decode histogram: %v", err)
			}
			d.name, d.value = m.GetName(), m.GetValue()
		default:
			t.Fatalf("unexpected function %q", c.Function)
		}
		out = append(out, d)
	}
	return out
}

func TestNewObserver(t *testing.T) {
	t.Parallel()

	if _, err := NewObserver(nil, "fn"); !errors.Is(err, ErrClientNil) {
		t.Fatalf("expected ErrClientNil, got %v", err)
	}

	c, err := New(Config{HostCall: func(string, string, string, []byte) ([]byte, error) { return nil, nil }})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	obs, err := NewObserver(c, "my-app")
	if err != nil {
		t.Fatalf("NewObserver returned error: %v", err)
	}
	if obs.prefix != "my_app" {
		t.Fatalf("prefix mismatch: want %q got %q", "my_app", obs.prefix)
	}
}

func TestObserverStartDone(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{ExpectedNamespace: "tarmac", ExpectedCapability: capabilityName})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	obs, err := NewObserver(c, "fn")
	if err != nil {
		t.Fatalf("NewObserver returned error: %v", err)
	}

	obs.Start("add")
	obs.Done("add", 1500*time.Millisecond, true)

	want := []decoded{
		{function: fnCounter, name: "fn_add_calls_total"},
		{function: fnGauge, name: "fn_add_inflight", action: actionInc},
		{function: fnGauge, name: "fn_add_inflight", action: actionDec},
		{function: fnHistogram, name: "fn_add_duration_seconds", value: 1.5},
	}

	got := decode(t, mock.Calls())
	if len(got) != len(want) {
		t.Fatalf("expected %d host calls, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d mismatch: want %+v got %+v", i, want[i], got[i])
		}
	}
}

func TestObserverWithLogger(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{ExpectedCapability: capabilityName})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	obs, err := NewObserver(c, "")
	if err != nil {
		t.Fatalf("NewObserver returned error: %v", err)
	}

	logger, err := calllog.New(calllog.Config{
		Sink:     calllog.SinkFunc(func(string) {}),
		Observer: obs,
	})
	if err != nil {
		t.Fatalf("calllog.New returned error: %v", err)
	}

	div := calllog.Wrap2(logger.Named("(*Calc).Div"), func(a, b int) int { return a / b })
	if got := div(6, 3); got != 2 {
		t.Fatalf("result mismatch: want 2 got %d", got)
	}

	for i := 0; i < 3; i++ {
		func() {
			defer func() { _ = recover() }()
			div(1, 0)
		}()
	}

	var counters, incs, decs, histograms, panics int
	for _, d := range decode(t, mock.Calls()) {
		switch {
		case d.function == fnCounter && d.name == "Calc_Div_calls_total":
			counters++
		case d.function == fnGauge && d.action == actionInc:
			incs++
		case d.function == fnGauge && d.action == actionDec:
			decs++
		case d.function == fnCounter && d.name == "Calc_Div_panics_total":
			panics++
		case d.function == fnHistogram && d.name == "Calc_Div_duration_seconds":
			histograms++
		default:
			t.Fatalf("unexpected metric %+v", d)
		}
	}

	if counters != 4 || incs != 4 || decs != 4 || histograms != 1 || panics != 3 {
		t.Fatalf("unexpected metric counts: counters=%d incs=%d decs=%d histograms=%d panics=%d", counters, incs, decs, histograms, panics)
	}
	if incs != decs {
		t.Fatalf("inflight gauge left unbalanced: incs=%d decs=%d", incs, decs)
	}
}

func TestObserverDonePanicked(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{ExpectedCapability: capabilityName})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	obs, err := NewObserver(c, "fn")
	if err != nil {
		t.Fatalf("NewObserver returned error: %v", err)
	}

	obs.Start("div")
	obs.Done("div", time.Second, false)

	want := []decoded{
		{function: fnCounter, name: "fn_div_calls_total"},
		{function: fnGauge, name: "fn_div_inflight", action: actionInc},
		{function: fnGauge, name: "fn_div_inflight", action: actionDec},
		{function: fnCounter, name: "fn_div_panics_total"},
	}

	got := decode(t, mock.Calls())
	if len(got) != len(want) {
		t.Fatalf("expected %d host calls, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d mismatch: want %+v got %+v", i, want[i], got[i])
		}
	}
}

func TestObserverConcurrent(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	obs, err := NewObserver(c, "fn")
	if err != nil {
		t.Fatalf("NewObserver returned error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obs.Start("work")
			obs.Done("work", time.Millisecond, true)
		}()
	}
	wg.Wait()

	if got := len(obs.calls); got != 1 {
		t.Fatalf("expected a single cached handle set, got %d", got)
	}
	if got := len(mock.Calls()); got != 16*4 {
		t.Fatalf("expected %d host calls, got %d", 16*4, got)
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tt := map[string]string{
		"add":              "add",
		"(*Calc).Add":      "Calc_Add",
		"Wrap1[...].func1": "Wrap1_func1",
		"ns:op":            "ns:op",
		"my-app":           "my_app",
		"trailing.":        "trailing",
		"...":              "unknown",
		"":                 "unknown",
	}

	for in, want := range tt {
		if got := sanitize(in); got != want {
			t.Errorf("sanitize(%q): want %q got %q", in, want, got)
		}
	}
}
