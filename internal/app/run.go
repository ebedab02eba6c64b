package app

import (
	"context"
	"errors"

	"github.com/vk/microunit/internal/ctxlog"
	"github.com/vk/microunit/registry"
	"github.com/vk/microunit/runner"
)

// ErrRunFailed reports that at least one test case failed. The entrypoint
// maps it to a non-zero exit code.
var ErrRunFailed = errors.New("one or more test cases failed")

// Run executes every registered test case once and renders the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.registry.Len() == 0 {
		a.logger.Warn("No test cases registered.")
	}

	r := runner.New(a.registry, a.outW, registry.Order(a.settings.Order))
	ok := r.Run(ctx)

	a.logger.Debug("App.Run method finished.", "ok", ok)
	if !ok {
		return ErrRunFailed
	}
	return nil
}
