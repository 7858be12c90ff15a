package indicator

import "math"

// MACD returns the MACD line (fast EMA - slow EMA), the signal line (EMA of
// the MACD line) and the histogram (MACD - signal). Warm-up positions are NaN.
func MACD(values []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal, histogram []float64) {
	n := len(values)
	macd = warmup(n)
	signal = warmup(n)
	histogram = warmup(n)

	if fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 || fastPeriod >= slowPeriod {
		return macd, signal, histogram
	}

	fast := EMA(values, fastPeriod)
	slow := EMA(values, slowPeriod)

	firstValid := -1

	for i := 0; i < n; i++ {
		if !math.IsNaN(fast[i]) && !math.IsNaN(slow[i]) {
			macd[i] = fast[i] - slow[i]
			if firstValid < 0 {
				firstValid = i
			}
		}
	}

	if firstValid < 0 || n-firstValid < signalPeriod {
		return macd, signal, histogram
	}

	// Signal line is an EMA over the valid MACD region only.
	signalValid := EMA(macd[firstValid:], signalPeriod)
	for i, v := range signalValid {
		signal[firstValid+i] = v
		if !math.IsNaN(v) {
			histogram[firstValid+i] = macd[firstValid+i] - v
		}
	}

	return macd, signal, histogram
}
