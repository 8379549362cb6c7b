package runner

import (
	"context"

	"github.com/pkg/errors"
)

// FakeRunner returns scripted results and records every call.
//
// Results are looked up per executable name first (in the order they were
// scripted); once a script is exhausted, Default is returned.
type FakeRunner struct {
	Calls   []Cmd
	Default Result

	// OnRun, when set, is called with each command and the result about to be
	// returned. Tests use it to emulate the tool's side effects, e.g. writing
	// the output file of a successful trim.
	OnRun func(cmd Cmd, res Result)

	scripts map[string][]Result
}

// NewFakeRunner creates a FakeRunner whose unscripted calls succeed.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{scripts: make(map[string][]Result)}
}

// Script queues results for the named executable.
func (f *FakeRunner) Script(name string, results ...Result) *FakeRunner {
	f.scripts[name] = append(f.scripts[name], results...)
	return f
}

// Run implements Runner.
func (f *FakeRunner) Run(_ context.Context, c Cmd) Result {
	f.Calls = append(f.Calls, c)

	res := f.Default
	if queue := f.scripts[c.Name]; len(queue) > 0 {
		res = queue[0]
		f.scripts[c.Name] = queue[1:]
	}
	if f.OnRun != nil {
		f.OnRun(c, res)
	}
	return res
}

// CallsTo returns the recorded calls to the named executable.
func (f *FakeRunner) CallsTo(name string) []Cmd {
	var out []Cmd
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Exit builds a Result with the given exit code.
func Exit(code int) Result {
	if code == 0 {
		return Result{}
	}
	return Result{ExitCode: code, Err: errors.Errorf("exit status %d", code)}
}

// Output builds a successful captured Result.
func Output(stdout string) Result {
	return Result{Stdout: stdout}
}
