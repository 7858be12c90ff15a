// Package engine replays candle data through a single strategy run: per base
// instrument candle it drives the exit cycle first, then the entry cycle,
// from one goroutine. Candles for other symbols, such as option leg premiums,
// only feed history.
package engine

import (
	"github.com/rxtech-lab/argo-strategies/internal/broker"
	"github.com/rxtech-lab/argo-strategies/internal/datasource"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/journal"
	"github.com/rxtech-lab/argo-strategies/internal/ledger"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/strategy"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Config describes one strategy run.
type Config struct {
	StrategyName string             `yaml:"strategy" json:"strategy" validate:"required"`
	Params       strategy.Params    `yaml:"params" json:"params"`
	Mode         strategy.Mode      `yaml:"mode" json:"mode"`
	Lots         int                `yaml:"lots" json:"lots"`
	Instruments  []types.Instrument `yaml:"instruments" json:"instruments" validate:"required,min=1"`
}

// Engine owns the run-scoped collaborators and the lifecycle loop.
type Engine struct {
	strategy strategy.Strategy
	ctx      *strategy.Context
	history  *datasource.MemoryHistory
	journal  *journal.Journal
	logger   *logger.Logger
	bucket   []types.Instrument
	tradable map[string]bool
}

// New builds an engine for the configured strategy and initializes it with
// its parameters. The journal may be nil for runs that do not persist fills.
func New(cfg Config, log *logger.Logger, j *journal.Journal) (*Engine, error) {
	s, err := strategy.NewStrategy(cfg.StrategyName)
	if err != nil {
		return nil, err
	}

	if err := s.Initialize(cfg.Params); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeStrategyConfigError, err,
			"failed to initialize strategy %s", cfg.StrategyName)
	}

	mode := cfg.Mode
	if mode == "" {
		mode = strategy.ModeIntraday
	}
	lots := cfg.Lots
	if lots <= 0 {
		lots = 1
	}

	history := datasource.NewMemoryHistory()
	tradable := make(map[string]bool, len(cfg.Instruments))
	for _, instrument := range cfg.Instruments {
		tradable[instrument.Key()] = true
	}

	return &Engine{
		strategy: s,
		ctx: &strategy.Context{
			History:    history,
			Gateway:    broker.NewSimGateway(log, j),
			Ledger:     ledger.New(),
			Mapper:     ledger.NewInstrumentMapper(),
			Indicators: indicator.NewLibrary(),
			Logger:     log,
			Mode:       mode,
			Lots:       lots,
		},
		history:  history,
		journal:  j,
		logger:   log,
		bucket:   cfg.Instruments,
		tradable: tradable,
	}, nil
}

// Tick feeds one candle into history and, for base instrument candles, runs
// one full exit-then-entry cycle. A callback error aborts the run.
func (e *Engine) Tick(candle types.Candle) error {
	e.history.Append(candle)

	if !e.tradable[candle.Symbol] {
		return nil
	}

	exits, exitMetas, err := e.strategy.SelectForExit(e.ctx, candle, e.bucket)
	if err != nil {
		return e.abort("select for exit failed", err)
	}
	for i, instrument := range exits {
		if _, err := e.strategy.ExitPosition(e.ctx, candle, instrument, exitMetas[i]); err != nil {
			return e.abort("exit position failed", err)
		}
	}

	entries, entryMetas, err := e.strategy.SelectForEntry(e.ctx, candle, e.bucket)
	if err != nil {
		return e.abort("select for entry failed", err)
	}
	for i, instrument := range entries {
		if _, err := e.strategy.EnterPosition(e.ctx, candle, instrument, entryMetas[i]); err != nil {
			return e.abort("enter position failed", err)
		}
	}

	return nil
}

func (e *Engine) abort(message string, cause error) error {
	e.logger.Error("strategy run aborted",
		zap.String("strategy", e.strategy.Name()),
		zap.Error(cause),
	)

	return errors.Wrapf(errors.ErrCodeStrategyAborted, cause, "%s", message)
}

// Replay drives a candle series through the engine in order, with a progress
// bar for long runs.
func (e *Engine) Replay(candles []types.Candle) error {
	bar := progressbar.Default(int64(len(candles)), "replaying "+e.strategy.Name())

	for _, candle := range candles {
		if err := e.Tick(candle); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	return bar.Finish()
}

// OpenPositions returns the symbols still held after a replay.
func (e *Engine) OpenPositions() []string {
	return e.ctx.Ledger.Symbols()
}

// RealizedPnL sums the journaled fill PnL of the run. Zero when the engine
// runs without a journal.
func (e *Engine) RealizedPnL() (float64, error) {
	if e.journal == nil {
		return 0, nil
	}

	return e.journal.RealizedPnL()
}
