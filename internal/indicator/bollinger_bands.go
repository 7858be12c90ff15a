package indicator

import "math"

// BollingerBands returns the upper, middle and lower bands. The middle band
// is an SMA; the bands sit stdDev population standard deviations away from it.
func BollingerBands(values []float64, period int, stdDev float64) (upper, middle, lower []float64) {
	n := len(values)
	upper = warmup(n)
	lower = warmup(n)
	middle = SMA(values, period)

	if period <= 0 || n < period {
		return upper, middle, lower
	}

	for i := period - 1; i < n; i++ {
		mean := middle[i]

		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := values[j] - mean
			variance += diff * diff
		}

		sd := math.Sqrt(variance / float64(period))
		upper[i] = mean + stdDev*sd
		lower[i] = mean - stdDev*sd
	}

	return upper, middle, lower
}
