// Package state defines shared program state threaded through
// context.Context for the lifetime of a CLI invocation.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/arclio/markdowndeck/config"
	"github.com/arclio/markdowndeck/layout"
	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/overflow"
)

type envKey struct{}

// LocalEnv keeps everything a single CLI invocation needs in one place: the
// resolved configuration, the logger, and the layout/overflow pipeline
// built from it, so a subcommand never has to re-derive a Calculator or
// Manager from scratch.
type LocalEnv struct {
	Cfg *config.EngineConfig
	Rpt *config.Report
	Log *zap.Logger

	Metrics *metrics.Engine
	Layout  *layout.Calculator
	Manager *overflow.Manager

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Init builds the Metrics/Layout/Manager pipeline from the already-resolved
// Cfg field (spec.md §10.4's Before hook calls this once Cfg/Log are
// populated), rather than leaving every subcommand to construct a
// metrics.Engine by hand.
func (e *LocalEnv) Init() error {
	eng, err := metrics.NewEngine(e.Cfg.Font.MeasurementCacheSize)
	if err != nil {
		return err
	}
	calc := layout.New(e.Cfg.LayoutConfig(), eng)
	mgr := overflow.NewManager(eng, calc)
	mgr.MaxPasses = e.Cfg.Pagination.MaxPasses
	if e.Log != nil {
		mgr.Log = e.Log.Named("overflow")
	}

	e.Metrics = eng
	e.Layout = calc
	e.Manager = mgr
	return nil
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
