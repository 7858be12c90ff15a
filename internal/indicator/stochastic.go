package indicator

import "math"

// Stochastic returns the slow %K and %D lines. Fast %K measures where the
// close sits within the trailing fastKPeriod range; slow %K smooths it with
// an SMA of slowKPeriod, and %D is an SMA of slow %K over slowDPeriod.
func Stochastic(highs, lows, closes []float64, fastKPeriod, slowKPeriod, slowDPeriod int) (slowK, slowD []float64) {
	n := len(closes)
	slowK = warmup(n)
	slowD = warmup(n)

	if fastKPeriod <= 0 || slowKPeriod <= 0 || slowDPeriod <= 0 {
		return slowK, slowD
	}

	if n < fastKPeriod || len(highs) != n || len(lows) != n {
		return slowK, slowD
	}

	fastK := warmup(n)

	for i := fastKPeriod - 1; i < n; i++ {
		hh := highest(highs, i-fastKPeriod+1, i+1)
		ll := lowest(lows, i-fastKPeriod+1, i+1)

		if hh == ll {
			fastK[i] = 50
			continue
		}

		fastK[i] = 100 * (closes[i] - ll) / (hh - ll)
	}

	slowK = smoothValid(fastK, slowKPeriod)
	slowD = smoothValid(slowK, slowDPeriod)

	return slowK, slowD
}

// smoothValid applies an SMA over the valid (non-NaN) tail of a series,
// preserving the NaN warm-up prefix.
func smoothValid(values []float64, period int) []float64 {
	out := warmup(len(values))

	firstValid := -1

	for i, v := range values {
		if !math.IsNaN(v) {
			firstValid = i
			break
		}
	}

	if firstValid < 0 {
		return out
	}

	smoothed := SMA(values[firstValid:], period)
	for i, v := range smoothed {
		out[firstValid+i] = v
	}

	return out
}
