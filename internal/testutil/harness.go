// Package testutil provides the shared harness for integration tests:
// a thread-safe capture buffer and a helper that runs the full app
// lifecycle against in-memory writers.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/vk/microunit/internal/app"
	"github.com/vk/microunit/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Report    string // run report written to the out writer
	LogOutput string // structured logs written to the err writer
	Err       error  // nil, app.ErrRunFailed, or a startup error
}

// RunHarness builds an App from cfg and the given suites, runs it once,
// and captures report and log output. Startup panics are recovered into
// HarnessResult.Err so tests can assert on them.
func RunHarness(t *testing.T, cfg *app.Config, suites ...registry.Suite) *HarnessResult {
	t.Helper()

	reportBuf := &SafeBuffer{}
	logBuf := &SafeBuffer{}

	var harness *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		harness = app.NewApp(reportBuf, logBuf, cfg, suites...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			Report:    reportBuf.String(),
			LogOutput: logBuf.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := harness.Run(context.Background())

	return &HarnessResult{
		Report:    reportBuf.String(),
		LogOutput: logBuf.String(),
		Err:       runErr,
	}
}
