package types

import (
	"fmt"
	"time"
)

// OptionType distinguishes call and put contracts.
type OptionType string

const (
	OptionTypeCall OptionType = "CE"
	OptionTypePut  OptionType = "PE"
)

// Instrument identifies a tradable symbol. Identity is the symbol string;
// instruments are created by the host (or derived for option legs) and only
// referenced by strategies.
type Instrument struct {
	Symbol   string `yaml:"symbol" json:"symbol" validate:"required"`
	Exchange string `yaml:"exchange" json:"exchange"`
	LotSize  int    `yaml:"lot_size" json:"lot_size" validate:"gt=0"`

	// Option contract attributes. Zero values for cash instruments.
	Underlying string     `yaml:"underlying,omitempty" json:"underlying,omitempty"`
	OptionType OptionType `yaml:"option_type,omitempty" json:"option_type,omitempty"`
	Strike     float64    `yaml:"strike,omitempty" json:"strike,omitempty"`
	Expiry     time.Time  `yaml:"expiry,omitempty" json:"expiry,omitempty"`
}

// NewEquityInstrument creates a cash instrument with the given lot size.
func NewEquityInstrument(symbol string, lotSize int) Instrument {
	return Instrument{
		Symbol:  symbol,
		LotSize: lotSize,
	}
}

// NewOptionInstrument derives an option leg for the given underlying. The
// symbol encodes strike and contract type so each leg has a distinct identity.
func NewOptionInstrument(underlying Instrument, optionType OptionType, strike float64, expiry time.Time) Instrument {
	return Instrument{
		Symbol:     fmt.Sprintf("%s%s%.0f%s", underlying.Symbol, expiry.Format("06Jan02"), strike, optionType),
		Exchange:   underlying.Exchange,
		LotSize:    underlying.LotSize,
		Underlying: underlying.Symbol,
		OptionType: optionType,
		Strike:     strike,
		Expiry:     expiry,
	}
}

// IsOption reports whether the instrument is an option contract.
func (i Instrument) IsOption() bool {
	return i.OptionType != ""
}

// Key returns the identity used by the ledger and instrument mapper.
func (i Instrument) Key() string {
	return i.Symbol
}
