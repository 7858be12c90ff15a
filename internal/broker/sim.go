package broker

import (
	"math"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-strategies/internal/journal"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// book tracks the gateway's net exposure per symbol for PnL attribution.
// Positive quantity is long, negative is short.
type book struct {
	quantity float64
	avgPrice float64
}

// SimGateway fills every order at its limit price immediately. It keeps a net
// book per symbol and journals fills with realized PnL, which is what replay
// runs and tests need from a gateway.
type SimGateway struct {
	logger  *logger.Logger
	journal *journal.Journal
	books   map[string]*book
	rejects map[string]bool
}

// NewSimGateway creates a gateway. The journal may be nil, in which case
// fills are not persisted.
func NewSimGateway(log *logger.Logger, j *journal.Journal) *SimGateway {
	return &SimGateway{
		logger:  log,
		journal: j,
		books:   make(map[string]*book),
		rejects: make(map[string]bool),
	}
}

// RejectOrdersFor makes subsequent orders for the given symbols fail.
// Used to exercise the multi-leg unwind path.
func (g *SimGateway) RejectOrdersFor(symbols ...string) {
	for _, symbol := range symbols {
		g.rejects[symbol] = true
	}
}

// PlaceOrder implements OrderGateway.
func (g *SimGateway) PlaceOrder(order *types.ExecuteOrder) (types.OrderHandle, error) {
	if err := order.Validate(); err != nil {
		return types.OrderHandle{}, err
	}

	handle := types.OrderHandle{
		ID:       uuid.New().String(),
		Symbol:   order.Symbol,
		Side:     order.Side,
		Price:    order.Price,
		Quantity: order.Quantity,
		Time:     order.Time,
	}

	if g.rejects[order.Symbol] {
		handle.Status = types.OrderStatusRejected
		g.logger.Warn("order rejected",
			zap.String("symbol", order.Symbol),
			zap.String("side", string(order.Side)),
		)

		return handle, errors.Newf(errors.ErrCodeOrderFailed, "order rejected for %s", order.Symbol)
	}

	handle.Status = types.OrderStatusFilled
	pnl := g.fill(order)

	if g.journal != nil {
		if err := g.journal.RecordOrder(handle, order.Reason, order.StrategyName); err != nil {
			return handle, err
		}

		trade := types.Trade{
			Order:         handle,
			ExecutedAt:    order.Time,
			ExecutedQty:   order.Quantity,
			ExecutedPrice: order.Price,
			PnL:           pnl,
			StrategyName:  order.StrategyName,
			Reason:        order.Reason,
		}
		if err := g.journal.RecordTrade(trade); err != nil {
			return handle, err
		}
	}

	g.logger.Debug("order filled",
		zap.String("symbol", order.Symbol),
		zap.String("side", string(order.Side)),
		zap.Float64("price", order.Price),
		zap.Float64("quantity", order.Quantity),
	)

	return handle, nil
}

// fill applies the order to the net book and returns the realized PnL of any
// reduced exposure, computed with decimal arithmetic.
func (g *SimGateway) fill(order *types.ExecuteOrder) float64 {
	b, ok := g.books[order.Symbol]
	if !ok {
		b = &book{}
		g.books[order.Symbol] = b
	}

	signedQty := order.Quantity
	if order.Side == types.PurchaseTypeSell {
		signedQty = -order.Quantity
	}

	pnl := 0.0

	sameDirection := b.quantity == 0 || (b.quantity > 0) == (signedQty > 0)
	if sameDirection {
		total := b.quantity + signedQty
		if total != 0 {
			prev := decimal.NewFromFloat(b.avgPrice).Mul(decimal.NewFromFloat(b.quantity))
			added := decimal.NewFromFloat(order.Price).Mul(decimal.NewFromFloat(signedQty))
			b.avgPrice, _ = prev.Add(added).Div(decimal.NewFromFloat(total)).Float64()
		}

		b.quantity = total

		return 0
	}

	closed := math.Min(math.Abs(b.quantity), math.Abs(signedQty))
	diff := decimal.NewFromFloat(order.Price).Sub(decimal.NewFromFloat(b.avgPrice))

	if b.quantity > 0 {
		pnl, _ = diff.Mul(decimal.NewFromFloat(closed)).Float64()
	} else {
		pnl, _ = diff.Neg().Mul(decimal.NewFromFloat(closed)).Float64()
	}

	b.quantity += signedQty
	if b.quantity == 0 {
		b.avgPrice = 0
	} else if (b.quantity > 0) == (signedQty > 0) {
		// Crossed through flat: remainder opens at the fill price
		b.avgPrice = order.Price
	}

	return pnl
}
