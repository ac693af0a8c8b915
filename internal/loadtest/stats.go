package loadtest

import (
	"sort"
	"sync"
	"time"
)

// Stats collects latency samples from all workers. Errors are counted
// without a sample so failed requests cannot skew the percentiles.
type Stats struct {
	mu        sync.Mutex
	durations []time.Duration
	total     time.Duration
	min       time.Duration
	max       time.Duration
	errors    int
	started   time.Time
}

// NewStats creates a collector with the clock already running.
func NewStats() *Stats {
	return &Stats{
		durations: make([]time.Duration, 0, 1024),
		min:       -1,
		max:       -1,
		started:   time.Now(),
	}
}

// Record adds one successful round trip.
func (s *Stats) Record(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = append(s.durations, d)
	s.total += d
	if s.min == -1 || d < s.min {
		s.min = d
	}
	if s.max == -1 || d > s.max {
		s.max = d
	}
}

// RecordError counts one failed request.
func (s *Stats) RecordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors++
}

// Summary is the final report of one run.
type Summary struct {
	Completed int
	Errors    int
	Elapsed   time.Duration

	Min  time.Duration
	Mean time.Duration
	Max  time.Duration

	P50 time.Duration
	P90 time.Duration
	P95 time.Duration
	P99 time.Duration

	RPS       float64
	ErrorRate float64 // percent of completed requests
}

// Summary computes the report for everything recorded so far.
func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]time.Duration, len(s.durations))
	copy(sorted, s.durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	sum := Summary{
		Completed: len(s.durations) + s.errors,
		Errors:    s.errors,
		Elapsed:   time.Since(s.started),
		P50:       percentile(sorted, 50),
		P90:       percentile(sorted, 90),
		P95:       percentile(sorted, 95),
		P99:       percentile(sorted, 99),
	}
	if s.min != -1 {
		sum.Min = s.min
		sum.Max = s.max
		sum.Mean = s.total / time.Duration(len(s.durations))
	}
	if sum.Elapsed > 0 {
		sum.RPS = float64(sum.Completed) / sum.Elapsed.Seconds()
	}
	if sum.Completed > 0 {
		sum.ErrorRate = float64(sum.Errors) / float64(sum.Completed) * 100
	}
	return sum
}

// percentile interpolates linearly between the two samples straddling the
// requested rank. p is between 0 and 100; the input must be sorted.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	index := (p / 100.0) * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return time.Duration(float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight)
}
