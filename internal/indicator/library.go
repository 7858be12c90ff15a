// Package indicator computes technical indicator series over bar windows.
//
// Every function is pure: it maps an input series (oldest first) to an output
// series of the same length, with math.NaN() in the warm-up positions where
// the lookback is not yet satisfied. Nothing is cached between calls; the
// signal reducers in crossover.go treat NaN as "no signal" rather than an
// error.
package indicator

// Library is the indicator capability strategies consume. Keeping it as an
// interface lets tests substitute canned series and keeps the numeric backend
// swappable.
type Library interface {
	// SMA computes the simple moving average of values over period.
	SMA(values []float64, period int) []float64
	// EMA computes the exponential moving average of values over period.
	EMA(values []float64, period int) []float64
	// RSI computes the relative strength index using Wilder smoothing.
	RSI(values []float64, period int) []float64
	// MACD returns the MACD line, signal line and histogram.
	MACD(values []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal, histogram []float64)
	// BollingerBands returns the upper, middle and lower bands.
	BollingerBands(values []float64, period int, stdDev float64) (upper, middle, lower []float64)
	// Aroon returns the Aroon up and down oscillators.
	Aroon(highs, lows []float64, period int) (up, down []float64)
	// Stochastic returns the slow %K and %D lines.
	Stochastic(highs, lows, closes []float64, fastKPeriod, slowKPeriod, slowDPeriod int) (slowK, slowD []float64)
	// ATR computes the average true range using Wilder smoothing.
	ATR(highs, lows, closes []float64, period int) []float64
	// OBV computes the cumulative on-balance volume.
	OBV(closes, volumes []float64) []float64
	// VWAP computes the volume-weighted average price, cumulative from the
	// start of the window.
	VWAP(highs, lows, closes, volumes []float64) []float64
}

type library struct{}

// NewLibrary returns the default indicator library.
func NewLibrary() Library {
	return library{}
}

func (library) SMA(values []float64, period int) []float64 { return SMA(values, period) }
func (library) EMA(values []float64, period int) []float64 { return EMA(values, period) }
func (library) RSI(values []float64, period int) []float64 { return RSI(values, period) }

func (library) MACD(values []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal, histogram []float64) {
	return MACD(values, fastPeriod, slowPeriod, signalPeriod)
}

func (library) BollingerBands(values []float64, period int, stdDev float64) (upper, middle, lower []float64) {
	return BollingerBands(values, period, stdDev)
}

func (library) Aroon(highs, lows []float64, period int) (up, down []float64) {
	return Aroon(highs, lows, period)
}

func (library) Stochastic(highs, lows, closes []float64, fastKPeriod, slowKPeriod, slowDPeriod int) (slowK, slowD []float64) {
	return Stochastic(highs, lows, closes, fastKPeriod, slowKPeriod, slowDPeriod)
}

func (library) ATR(highs, lows, closes []float64, period int) []float64 {
	return ATR(highs, lows, closes, period)
}

func (library) OBV(closes, volumes []float64) []float64 { return OBV(closes, volumes) }

func (library) VWAP(highs, lows, closes, volumes []float64) []float64 {
	return VWAP(highs, lows, closes, volumes)
}
