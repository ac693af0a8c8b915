package loadtest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grafana/sobek"
)

// RequestSpec is what a scenario's request(i) returns in HTTP mode.
type RequestSpec struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Body   string `json:"body"`
}

// KeySpec is what a scenario's keyEvent(i) returns in WS mode.
type KeySpec struct {
	Key       string `json:"key"`
	Ctrl      bool   `json:"ctrl"`
	Shift     bool   `json:"shift"`
	Alt       bool   `json:"alt"`
	TextEntry bool   `json:"textEntry"`
}

// Scenario is a compiled load script. Compile once, then spawn one
// WorkerScript per worker; sobek runtimes are not goroutine-safe.
type Scenario struct {
	name string
	prog *sobek.Program
}

// LoadScenario reads and compiles a JavaScript scenario file.
func LoadScenario(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	name := filepath.Base(path)
	prog, err := sobek.Compile(name, string(src), true)
	if err != nil {
		return nil, fmt.Errorf("compile scenario %s: %w", name, err)
	}

	return &Scenario{name: name, prog: prog}, nil
}

// Name returns the scenario's file name.
func (s *Scenario) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// WorkerScript is one worker's private runtime for a scenario.
type WorkerScript struct {
	vm       *sobek.Runtime
	request  sobek.Callable
	keyEvent sobek.Callable
}

// NewWorkerScript evaluates the scenario in a fresh runtime and binds
// whichever of request(i) and keyEvent(i) the script defines.
func (s *Scenario) NewWorkerScript() (*WorkerScript, error) {
	if s == nil {
		return nil, nil
	}

	vm := sobek.New()
	vm.SetFieldNameMapper(sobek.TagFieldNameMapper("json", true))
	if _, err := vm.RunProgram(s.prog); err != nil {
		return nil, fmt.Errorf("evaluate scenario %s: %w", s.name, err)
	}

	ws := &WorkerScript{vm: vm}
	if fn, ok := sobek.AssertFunction(vm.Get("request")); ok {
		ws.request = fn
	}
	if fn, ok := sobek.AssertFunction(vm.Get("keyEvent")); ok {
		ws.keyEvent = fn
	}
	return ws, nil
}

// Request asks the script for the i-th HTTP request. ok is false when the
// script does not define request(i) or returns nothing for this iteration,
// in which case the caller falls back to the built-in mix.
func (w *WorkerScript) Request(i int) (RequestSpec, bool, error) {
	if w == nil || w.request == nil {
		return RequestSpec{}, false, nil
	}

	v, err := w.request(sobek.Undefined(), w.vm.ToValue(i))
	if err != nil {
		return RequestSpec{}, false, fmt.Errorf("request(%d): %w", i, err)
	}
	if v == nil || sobek.IsUndefined(v) || sobek.IsNull(v) {
		return RequestSpec{}, false, nil
	}

	var spec RequestSpec
	if err := w.vm.ExportTo(v, &spec); err != nil {
		return RequestSpec{}, false, fmt.Errorf("request(%d) result: %w", i, err)
	}
	return spec, true, nil
}

// KeyEvent asks the script for the i-th key event. ok is false when the
// script does not define keyEvent(i) or returns nothing for this iteration.
func (w *WorkerScript) KeyEvent(i int) (KeySpec, bool, error) {
	if w == nil || w.keyEvent == nil {
		return KeySpec{}, false, nil
	}

	v, err := w.keyEvent(sobek.Undefined(), w.vm.ToValue(i))
	if err != nil {
		return KeySpec{}, false, fmt.Errorf("keyEvent(%d): %w", i, err)
	}
	if v == nil || sobek.IsUndefined(v) || sobek.IsNull(v) {
		return KeySpec{}, false, nil
	}

	var spec KeySpec
	if err := w.vm.ExportTo(v, &spec); err != nil {
		return KeySpec{}, false, fmt.Errorf("keyEvent(%d) result: %w", i, err)
	}
	return spec, true, nil
}
