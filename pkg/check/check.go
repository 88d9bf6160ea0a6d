// Package check runs named groups of assertions outside of `go test`.
//
// T implements the testify TestingT interfaces, so the assert and require packages
// report into it. Every failure is logged and counted instead of stopping the process.
package check

import (
	"fmt"

	"github.com/xuning888/wstr/logger"
)

type failNow struct{}

type T struct {
	name     string
	failures int
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.failures++
	logger.ErrorF("<%s> %s", t.name, fmt.Sprintf(format, args...))
}

// FailNow aborts the running test, Suite.Run recovers from it.
func (t *T) FailNow() {
	panic(failNow{})
}

func (t *T) Helper() {}

func (t *T) Name() string {
	return t.name
}

func (t *T) Failed() bool {
	return t.failures > 0
}

type Result struct {
	Name     string
	Failures int
	// Aborted is set when the test stopped early, by FailNow or a panic
	Aborted bool
}

func (r Result) Passed() bool {
	return r.Failures == 0 && !r.Aborted
}

type Suite struct {
	results []Result
}

func NewSuite() *Suite {
	return &Suite{results: make([]Result, 0)}
}

// Run executes fn and records its outcome. It reports whether the test passed.
func (s *Suite) Run(name string, fn func(t *T)) bool {
	logger.InfoF("running test <%s>", name)
	t := &T{name: name}
	result := Result{Name: name}
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Aborted = true
				if _, ok := r.(failNow); !ok {
					logger.ErrorF("<%s> panic: %v", name, r)
				}
			}
		}()
		fn(t)
	}()
	result.Failures = t.failures
	s.results = append(s.results, result)
	if result.Passed() {
		logger.InfoF("test <%s> ended successfully", name)
	} else if result.Aborted {
		logger.ErrorF("<!> test <%s> ended exceptionally", name)
	} else {
		logger.ErrorF("<!> test <%s> ended with %d failed assertions", name, result.Failures)
	}
	return result.Passed()
}

func (s *Suite) Results() []Result {
	return append([]Result{}, s.results...)
}

// Failed returns the number of tests that did not pass.
func (s *Suite) Failed() int {
	failed := 0
	for _, r := range s.results {
		if !r.Passed() {
			failed++
		}
	}
	return failed
}
