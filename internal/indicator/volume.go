package indicator

// OBV computes the cumulative on-balance volume: volume is added on up
// closes, subtracted on down closes, unchanged on flat closes.
func OBV(closes, volumes []float64) []float64 {
	n := len(closes)
	out := make([]float64, n)

	if n == 0 || len(volumes) != n {
		return out
	}

	out[0] = volumes[0]

	for i := 1; i < n; i++ {
		switch {
		case closes[i] > closes[i-1]:
			out[i] = out[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}

	return out
}

// VWAP computes the volume-weighted average price of the typical price
// (high+low+close)/3, cumulative from the start of the window. A window that
// starts at the session open yields the session VWAP.
func VWAP(highs, lows, closes, volumes []float64) []float64 {
	n := len(closes)
	out := warmup(n)

	if n == 0 || len(highs) != n || len(lows) != n || len(volumes) != n {
		return out
	}

	cumPV := 0.0
	cumVol := 0.0

	for i := 0; i < n; i++ {
		typical := (highs[i] + lows[i] + closes[i]) / 3
		cumPV += typical * volumes[i]
		cumVol += volumes[i]

		if cumVol > 0 {
			out[i] = cumPV / cumVol
		}
	}

	return out
}
