package indicator

import "math"

// ATR computes the average true range with Wilder smoothing. The first value
// appears at index period (the first bar has no previous close, so its true
// range is high-low).
func ATR(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	out := warmup(n)

	if period <= 0 || n < period+1 || len(highs) != n || len(lows) != n {
		return out
	}

	tr := make([]float64, n)
	tr[0] = highs[0] - lows[0]

	for i := 1; i < n; i++ {
		tr[i] = math.Max(
			highs[i]-lows[i],
			math.Max(
				math.Abs(highs[i]-closes[i-1]),
				math.Abs(lows[i]-closes[i-1]),
			),
		)
	}

	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += tr[i]
	}

	prev := sum / float64(period)
	out[period] = prev

	for i := period + 1; i < n; i++ {
		prev = (prev*float64(period-1) + tr[i]) / float64(period)
		out[i] = prev
	}

	return out
}
