package indicator

// Aroon returns the Aroon up and down oscillators in [0, 100]. Each value
// looks back over the trailing period+1 bars; ties resolve to the most recent
// extreme. The first period positions are NaN.
func Aroon(highs, lows []float64, period int) (up, down []float64) {
	n := len(highs)
	up = warmup(n)
	down = warmup(n)

	if period <= 0 || n < period+1 || len(lows) != n {
		return up, down
	}

	for i := period; i < n; i++ {
		hiIdx := i - period
		loIdx := i - period

		for j := i - period; j <= i; j++ {
			if highs[j] >= highs[hiIdx] {
				hiIdx = j
			}

			if lows[j] <= lows[loIdx] {
				loIdx = j
			}
		}

		up[i] = 100 * float64(period-(i-hiIdx)) / float64(period)
		down[i] = 100 * float64(period-(i-loIdx)) / float64(period)
	}

	return up, down
}
