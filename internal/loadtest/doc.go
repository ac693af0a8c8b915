/*
Package loadtest drives synthetic operator traffic against a running
quarterdeck gateway.

# Overview

The package implements two black-box load modes:

  - HTTP: a worker pool replays a request mix against the REST surface
    (/healthz and the /v1 endpoints) with ramp-up offsets and think time.
  - WS: N concurrent console sessions connect to /ws, perform the hello
    handshake, then replay a key-event script and measure the dispatch
    round trip for every key.

Both modes collect latency samples into Stats and report min/avg/max plus
P50/P90/P95/P99 with linear interpolation between neighboring samples.

# Scenarios

A run can load an optional JavaScript scenario executed on grafana/sobek.
Each worker gets its own runtime, since sobek runtimes are not safe for
concurrent use. The scenario may define either or both of:

	function request(i) {
		// HTTP mode: return the request for iteration i, or nothing to
		// fall back to the default mix.
		if (i % 10 === 0) {
			return { method: "GET", path: "/v1/history/stats" };
		}
		return { method: "GET", path: "/v1/keymap" };
	}

	function keyEvent(i) {
		// WS mode: return the key event for iteration i.
		if (i % 2 === 0) {
			return { key: "k", ctrl: true };
		}
		return { key: "escape", textEntry: true };
	}

# Cancellation

Runs stop when the iteration budget is spent, the configured duration
elapses, or the context is canceled (ctrl+c in the loadgen binary). WS
workers always finish with a clean close handshake so gateway session
logs stay tidy.
*/
package loadtest
