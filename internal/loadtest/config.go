package loadtest

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects which gateway surface a run exercises.
type Mode string

const (
	// ModeHTTP replays a request mix against the REST API.
	ModeHTTP Mode = "http"
	// ModeWS replays key events over concurrent console sessions.
	ModeWS Mode = "ws"
)

// Limits keep a mistyped flag from turning the tool into a footgun.
const (
	maxWorkers  = 1000
	maxRequests = 1_000_000
)

// defaultTimeout bounds one request or one dispatch round trip.
const defaultTimeout = 10 * time.Second

// Config represents one load test run.
type Config struct {
	Mode   Mode
	Target string // http(s)://host:port for HTTP mode, ws(s)://host:port/ws for WS mode
	Token  string

	Workers  int
	Requests int           // total across all workers; 0 means run until Duration
	Duration time.Duration // wall-clock limit; 0 means run the full request budget

	RampUp    time.Duration // worker starts spread across this window
	ThinkTime time.Duration // pause between iterations
	Timeout   time.Duration // per-request / per-round-trip limit

	Locale     string // hello locale for WS sessions
	ScriptPath string // optional sobek scenario
}

// Validate checks the run configuration.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeHTTP, ModeWS:
	default:
		return fmt.Errorf("mode must be %q or %q", ModeHTTP, ModeWS)
	}

	if strings.TrimSpace(c.Target) == "" {
		return fmt.Errorf("target URL is required")
	}
	if c.Mode == ModeHTTP && !strings.HasPrefix(c.Target, "http") {
		return fmt.Errorf("http mode needs an http(s):// target, got %q", c.Target)
	}
	if c.Mode == ModeWS && !strings.HasPrefix(c.Target, "ws") {
		return fmt.Errorf("ws mode needs a ws(s):// target, got %q", c.Target)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if c.Workers > maxWorkers {
		return fmt.Errorf("workers cannot exceed %d", maxWorkers)
	}
	if c.Requests < 0 {
		return fmt.Errorf("requests cannot be negative")
	}
	if c.Requests > maxRequests {
		return fmt.Errorf("requests cannot exceed %d", maxRequests)
	}
	if c.Requests == 0 && c.Duration <= 0 {
		return fmt.Errorf("either a request budget or a duration is required")
	}
	if c.RampUp < 0 {
		return fmt.Errorf("ramp-up cannot be negative")
	}
	if c.ThinkTime < 0 {
		return fmt.Errorf("think time cannot be negative")
	}
	return nil
}

// RequestTimeout returns the per-request limit, defaulted when unset.
func (c *Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// workerQuota splits the total request budget across workers, earlier
// workers absorbing the remainder. Zero means unlimited (duration-bound).
func (c *Config) workerQuota(worker int) int {
	if c.Requests == 0 {
		return 0
	}
	quota := c.Requests / c.Workers
	if worker < c.Requests%c.Workers {
		quota++
	}
	return quota
}

// rampDelay staggers worker start times across the ramp-up window.
func (c *Config) rampDelay(worker int) time.Duration {
	if c.RampUp <= 0 || c.Workers <= 1 {
		return 0
	}
	return c.RampUp * time.Duration(worker) / time.Duration(c.Workers)
}
