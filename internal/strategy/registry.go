package strategy

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

// Factory creates a fresh, uninitialized strategy instance.
type Factory func() Strategy

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

func init() {
	Register("sma_crossover", func() Strategy { return NewSMACrossover() })
	Register("ema_crossover", func() Strategy { return NewEMACrossover() })
	Register("reverse_rsi_crossover", func() Strategy { return NewReverseRSICrossover() })
	Register("macd_crossover", func() Strategy { return NewMACDCrossover() })
	Register("bollinger_bands", func() Strategy { return NewBollingerBands() })
	Register("aroon_crossover", func() Strategy { return NewAroonCrossover() })
	Register("stochastic_crossover", func() Strategy { return NewStochasticCrossover() })
	Register("obv_crossover", func() Strategy { return NewOBVCrossover() })
	Register("vwap_crossover", func() Strategy { return NewVWAPCrossover() })
	Register("volatility_trend_atr", func() Strategy { return NewVolatilityTrendATR() })
	Register("range_breakout", func() Strategy { return NewRangeBreakout() })
	Register("options_bull_call_spread", func() Strategy { return NewBullCallSpread() })
	Register("options_short_straddle", func() Strategy { return NewShortStraddle() })
}

// Register makes a strategy available by name. Later registrations replace
// earlier ones, which lets hosts override a built-in.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = factory
}

// NewStrategy creates a registered strategy by name.
func NewStrategy(name string) (Strategy, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.Newf(errors.ErrCodeUnknownStrategy, "unknown strategy %q", name)
	}

	return factory(), nil
}

// Names lists the registered strategy names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
