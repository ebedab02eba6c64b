package runner

import (
	"context"
	"io"
	"os"

	"github.com/vk/microunit/internal/ctxlog"
	"github.com/vk/microunit/internal/report"
	"github.com/vk/microunit/registry"
	"github.com/vk/microunit/unit"
)

// Runner iterates a registry, executes each case once, and renders the
// report. It is strictly sequential: a case finishes before the next one
// starts, and Run blocks until the whole set has been processed.
type Runner struct {
	reg     *registry.Registry
	console *report.Console
	order   registry.Order
}

// New returns a Runner over reg that writes its report to out.
func New(reg *registry.Registry, out io.Writer, order registry.Order) *Runner {
	return &Runner{
		reg:     reg,
		console: report.NewConsole(out),
		order:   order,
	}
}

// Run executes every registered case and returns true only when all of
// them passed. The registry is not mutated, so calling Run again repeats
// the same set.
//
// A panic inside a test body is not recovered and aborts the whole run;
// only the Result primitives stop a single case.
func (r *Runner) Run(ctx context.Context) bool {
	logger := ctxlog.FromContext(ctx)

	cases := r.reg.Cases(r.order)
	logger.Debug("Runner starting.", "cases", len(cases), "order", string(r.order))

	var failures []string
	for _, c := range cases {
		r.console.BeginCase(c.Name)
		logger.Debug("Executing test case.", "name", c.Name)

		res := unit.NewResult(r.console.Writer())
		execute(c.Fn, res)

		r.console.EndCase(res.OK())
		if !res.OK() {
			failures = append(failures, c.Name)
			logger.Debug("Test case failed.", "name", c.Name)
		}
	}

	r.console.Summary(failures)

	ok := len(failures) == 0
	logger.Debug("Runner finished.", "failed", len(failures), "ok", ok)
	return ok
}

// execute runs one test body on its own goroutine and joins it before
// returning. The goroutine exists only so the runtime.Goexit issued by the
// Result primitives unwinds this body and nothing else; execution stays
// sequential.
func execute(fn unit.Func, res *unit.Result) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(res)
	}()
	<-done
}

// Run executes every case in the default registry in name order, printing
// the report to stdout. The boolean is the sole programmatic signal of
// overall success; a hosting main is expected to map it to the process
// exit code.
func Run() bool {
	return New(registry.Default(), os.Stdout, registry.OrderByName).Run(context.Background())
}
