package strategy

import (
	"time"

	"github.com/rxtech-lab/argo-strategies/internal/broker"
	"github.com/rxtech-lab/argo-strategies/internal/datasource"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/ledger"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

// testRig is the shared harness: a context with in-memory collaborators plus
// the concrete handles the tests drive directly.
type testRig struct {
	ctx     *Context
	history *datasource.MemoryHistory
	gateway *broker.SimGateway
}

func newTestRig(mode Mode) *testRig {
	history := datasource.NewMemoryHistory()
	gateway := broker.NewSimGateway(logger.NewNopLogger(), nil)

	return &testRig{
		ctx: &Context{
			History:    history,
			Gateway:    gateway,
			Ledger:     ledger.New(),
			Mapper:     ledger.NewInstrumentMapper(),
			Indicators: indicator.NewLibrary(),
			Logger:     logger.NewNopLogger(),
			Mode:       mode,
			Lots:       1,
		},
		history: history,
		gateway: gateway,
	}
}

var testEpoch = time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)

func bar(symbol string, tick int, close float64) types.Candle {
	return types.Candle{
		Symbol: symbol,
		Time:   testEpoch.Add(time.Duration(tick) * time.Minute),
		Open:   close,
		High:   close,
		Low:    close,
		Close:  close,
		Volume: 1000,
	}
}

// step drives one candle through the lifecycle the way the host does: exit
// cycle first, then entry cycle.
func step(s Strategy, ctx *Context, candle types.Candle, bucket []types.Instrument) error {
	exits, exitMetas, err := s.SelectForExit(ctx, candle, bucket)
	if err != nil {
		return err
	}
	for i, instrument := range exits {
		if _, err := s.ExitPosition(ctx, candle, instrument, exitMetas[i]); err != nil {
			return err
		}
	}

	entries, entryMetas, err := s.SelectForEntry(ctx, candle, bucket)
	if err != nil {
		return err
	}
	for i, instrument := range entries {
		if _, err := s.EnterPosition(ctx, candle, instrument, entryMetas[i]); err != nil {
			return err
		}
	}

	return nil
}
