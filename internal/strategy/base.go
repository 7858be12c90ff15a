package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"go.uber.org/zap"
)

// signalFunc computes the crossover code for one instrument on the current
// candle. Short or NaN-padded windows come back as 0 from the reducers, so a
// signalFunc never errors.
type signalFunc func(ctx *Context, instrument types.Instrument) int

// exitFunc reports whether an open position should close on the current
// candle, and the order reason to record if it should.
type exitFunc func(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string)

// selectEntries runs the shared entry loop of the single-leg strategies:
// skip instruments with an open position, map the signal to an action, and
// drop short entries when the run mode forbids them.
func selectEntries(ctx *Context, bucket []types.Instrument, signal signalFunc) ([]types.Instrument, []Meta, error) {
	var selected []types.Instrument
	var metas []Meta

	for _, instrument := range bucket {
		if _, open := ctx.Ledger.Get(instrument); open {
			continue
		}

		action := types.EntryAction(signal(ctx, instrument))
		if action == types.ActionNone {
			continue
		}
		if action == types.ActionSell && !ctx.AllowShortEntries() {
			continue
		}

		selected = append(selected, instrument)
		metas = append(metas, Meta{"action": action})
	}

	return selected, metas, nil
}

// selectExits runs the shared exit loop: only instruments with an open
// position are considered, and the exit decision never mutates the ledger.
func selectExits(ctx *Context, bucket []types.Instrument, shouldExit exitFunc) ([]types.Instrument, []Meta, error) {
	var selected []types.Instrument
	var metas []Meta

	for _, instrument := range bucket {
		position, open := ctx.Ledger.Get(instrument)
		if !open {
			continue
		}

		exit, reason := shouldExit(ctx, instrument, position)
		if !exit {
			continue
		}

		selected = append(selected, instrument)
		metas = append(metas, Meta{"action": types.ActionExit, "reason": reason})
	}

	return selected, metas, nil
}

// openPosition places the entry order at the latest traded price and records
// the position. The latest close stands in for the traded price; candle close
// is the fallback when the instrument has no history yet.
func openPosition(ctx *Context, candle types.Candle, instrument types.Instrument, action types.Action, strategyName string, stop optional.Option[types.StopLoss]) (types.OrderHandle, error) {
	price, ok := ctx.History.LastPrice(instrument.Key())
	if !ok {
		price = candle.Close
	}

	side := types.PurchaseTypeBuy
	if action == types.ActionSell {
		side = types.PurchaseTypeSell
	}

	order := &types.ExecuteOrder{
		Symbol:       instrument.Key(),
		Side:         side,
		Quantity:     ctx.Quantity(instrument),
		Price:        price,
		Time:         candle.Time,
		Reason:       types.Reason{Reason: types.OrderReasonStrategy, Message: "entry signal"},
		StrategyName: strategyName,
		PositionSide: types.SideForAction(action),
		StopLoss:     stop,
	}

	handle, err := ctx.Gateway.PlaceOrder(order)
	if err != nil {
		return handle, err
	}

	if _, err := ctx.Ledger.Open(instrument, order.PositionSide, price, order.Quantity, candle.Time, handle.ID); err != nil {
		return handle, err
	}

	ctx.Logger.Info("position opened",
		zap.String("strategy", strategyName),
		zap.String("symbol", instrument.Key()),
		zap.String("side", string(order.PositionSide)),
		zap.Float64("price", price),
	)

	return handle, nil
}

// closePosition places the closing order for an open position and deletes the
// ledger record. Closing a flat instrument is a no-op reported as success, so
// the exit step stays idempotent within a candle.
func closePosition(ctx *Context, candle types.Candle, instrument types.Instrument, strategyName, reason string) (bool, error) {
	position, open := ctx.Ledger.Get(instrument)
	if !open {
		return true, nil
	}

	side := types.PurchaseTypeSell
	if position.Side == types.PositionSideShort {
		side = types.PurchaseTypeBuy
	}

	price, ok := ctx.History.LastPrice(instrument.Key())
	if !ok {
		price = candle.Close
	}

	order := &types.ExecuteOrder{
		Symbol:       instrument.Key(),
		Side:         side,
		Quantity:     position.Quantity,
		Price:        price,
		Time:         candle.Time,
		Reason:       types.Reason{Reason: reason, Message: "closing " + string(position.Side) + " position"},
		StrategyName: strategyName,
		PositionSide: position.Side,
		StopLoss:     optional.None[types.StopLoss](),
	}

	if _, err := ctx.Gateway.PlaceOrder(order); err != nil {
		return false, err
	}

	ctx.Ledger.Close(instrument)

	ctx.Logger.Info("position closed",
		zap.String("strategy", strategyName),
		zap.String("symbol", instrument.Key()),
		zap.String("reason", reason),
		zap.Float64("price", price),
	)

	return true, nil
}

// exitReason extracts the order reason attached by selectExits, defaulting to
// a plain exit signal.
func exitReason(meta Meta) string {
	if reason, ok := meta["reason"].(string); ok && reason != "" {
		return reason
	}

	return types.OrderReasonExitSignal
}
