package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

type PurchaseType string

type OrderStatus string

const (
	PurchaseTypeBuy  PurchaseType = "BUY"
	PurchaseTypeSell PurchaseType = "SELL"
)

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusFilled    OrderStatus = "FILLED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

const (
	OrderReasonStrategy   string = "strategy"
	OrderReasonStopLoss   string = "stop_loss"
	OrderReasonTakeProfit string = "take_profit"
	OrderReasonExitSignal string = "exit_signal"
	OrderReasonLegUnwind  string = "leg_unwind"
)

// Reason records why an order was placed.
type Reason struct {
	Reason  string `yaml:"reason" json:"reason" validate:"required"`
	Message string `yaml:"message" json:"message"`
}

// StopLoss is an optional protective level attached to an entry order.
type StopLoss struct {
	Price float64 `yaml:"price" json:"price" validate:"required,gt=0"`
}

// ExecuteOrder is the intent a strategy hands to the order gateway.
type ExecuteOrder struct {
	Symbol       string       `yaml:"symbol" json:"symbol" validate:"required"`
	Side         PurchaseType `yaml:"side" json:"side" validate:"required,oneof=BUY SELL"`
	Quantity     float64      `yaml:"quantity" json:"quantity" validate:"required,gt=0"`
	Price        float64      `yaml:"price" json:"price" validate:"required,gt=0"`
	Time         time.Time    `yaml:"time" json:"time" validate:"required"`
	Reason       Reason       `yaml:"reason" json:"reason" validate:"required"`
	StrategyName string       `yaml:"strategy_name" json:"strategy_name" validate:"required"`
	PositionSide PositionSide `yaml:"position_side" json:"position_side" validate:"required,oneof=LONG SHORT"`
	// StopLoss is an optional protective stop. None if not set.
	StopLoss optional.Option[StopLoss] `yaml:"stop_loss" json:"stop_loss"`
}

// OrderHandle is what the gateway returns for a placed order. The host tracks
// it; strategies only read the status and entry price.
type OrderHandle struct {
	ID       string       `yaml:"id" json:"id"`
	Symbol   string       `yaml:"symbol" json:"symbol"`
	Side     PurchaseType `yaml:"side" json:"side"`
	Status   OrderStatus  `yaml:"status" json:"status"`
	Price    float64      `yaml:"price" json:"price"`
	Quantity float64      `yaml:"quantity" json:"quantity"`
	Time     time.Time    `yaml:"time" json:"time"`
}

// IsComplete reports whether the order has been filled.
func (h OrderHandle) IsComplete() bool {
	return h.Status == OrderStatusFilled
}

// Validate validates the ExecuteOrder struct.
func (eo *ExecuteOrder) Validate() error {
	validate := validator.New()

	if err := validate.Struct(eo); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrder, "invalid execute order", err)
	}

	if eo.StopLoss.IsSome() {
		sl := eo.StopLoss.Unwrap()
		if err := validate.Struct(sl); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOrder, "invalid stop loss", err)
		}
	}

	return nil
}
