package loadtest

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	tcpDialTimeout       = 5 * time.Second
	tcpKeepAliveInterval = 30 * time.Second
	tlsHandshakeTimeout  = 5 * time.Second
	idleConnTimeout      = 90 * time.Second
)

// defaultRequestMix rotates through the gateway's read endpoints when the
// scenario does not provide its own request(i).
var defaultRequestMix = []RequestSpec{
	{Method: http.MethodGet, Path: "/healthz"},
	{Method: http.MethodGet, Path: "/v1/keymap"},
	{Method: http.MethodGet, Path: "/v1/language"},
	{Method: http.MethodGet, Path: "/v1/history?limit=20"},
	{Method: http.MethodGet, Path: "/v1/history/stats"},
}

func defaultRequest(i int) RequestSpec {
	return defaultRequestMix[i%len(defaultRequestMix)]
}

// HTTPRunner drives the gateway's REST surface with a pool of workers
// sharing one pooled HTTP client.
type HTTPRunner struct {
	cfg      Config
	client   *http.Client
	stats    *Stats
	scenario *Scenario
}

// NewHTTPRunner builds a runner for the given config. scenario may be nil.
func NewHTTPRunner(cfg Config, scenario *Scenario) *HTTPRunner {
	return &HTTPRunner{
		cfg:      cfg,
		client:   buildLoadTestHTTPClient(cfg),
		stats:    NewStats(),
		scenario: scenario,
	}
}

// buildLoadTestHTTPClient sizes the connection pool to the worker count so
// the client itself never becomes the bottleneck under test.
func buildLoadTestHTTPClient(cfg Config) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        cfg.Workers,
		MaxIdleConnsPerHost: cfg.Workers,
		MaxConnsPerHost:     cfg.Workers * 2,
		IdleConnTimeout:     idleConnTimeout,
		ForceAttemptHTTP2:   true,
		DialContext: (&net.Dialer{
			Timeout:   tcpDialTimeout,
			KeepAlive: tcpKeepAliveInterval,
		}).DialContext,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ResponseHeaderTimeout: cfg.RequestTimeout(),
	}

	return &http.Client{
		Timeout:   cfg.RequestTimeout(),
		Transport: transport,
	}
}

// Run executes the load test and blocks until the request budget is spent,
// the duration elapses, or ctx is cancelled. The summary covers whatever
// completed before the run ended.
func (r *HTTPRunner) Run(ctx context.Context) (Summary, error) {
	if r.cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Duration)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Workers; i++ {
		worker := i
		g.Go(func() error {
			return r.worker(ctx, worker)
		})
	}

	err := g.Wait()
	return r.stats.Summary(), err
}

// worker runs one request loop. Returning nil on ctx.Done lets
// duration-bound runs finish with a clean summary instead of an error.
func (r *HTTPRunner) worker(ctx context.Context, id int) error {
	if delay := r.cfg.rampDelay(id); delay > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}

	script, err := r.scenario.NewWorkerScript()
	if err != nil {
		return err
	}

	quota := r.cfg.workerQuota(id)
	for i := 0; quota == 0 || i < quota; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		spec, ok, err := script.Request(i)
		if err != nil {
			return err
		}
		if !ok {
			spec = defaultRequest(i)
		}

		r.doRequest(ctx, spec)

		if r.cfg.ThinkTime > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(r.cfg.ThinkTime):
			}
		}
	}
	return nil
}

// doRequest executes one request and records it. Network failures and
// status codes >= 400 count as errors; a request cut short by the run
// ending counts as neither.
func (r *HTTPRunner) doRequest(ctx context.Context, spec RequestSpec) {
	method := spec.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if spec.Body != "" {
		body = strings.NewReader(spec.Body)
	}

	url := strings.TrimRight(r.cfg.Target, "/") + spec.Path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		r.stats.RecordError()
		return
	}
	if r.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.Token)
	}
	if spec.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.stats.RecordError()
		return
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		r.stats.RecordError()
		return
	}
	r.stats.Record(time.Since(start))
}
