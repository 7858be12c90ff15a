package indicator

import "math"

// Crossover compares the last two values of two series and reports the
// transition: +1 when a crossed above b on the latest bar, -1 when it crossed
// below, 0 otherwise. Ties on the latest bar do not register (strict
// inequality after the cross, inclusive before it). A NaN previous pair is
// the warm-up boundary and counts as a tie, so a series that is already above
// at its first valid comparison registers as having just crossed. Short
// windows or a NaN latest pair yield 0 rather than an error.
func Crossover(a, b []float64) int {
	n := len(a)
	if n < 2 || len(b) < 2 || len(b) != n {
		return 0
	}

	prevA, currA := a[n-2], a[n-1]
	prevB, currB := b[n-2], b[n-1]

	if anyNaN(currA, currB) {
		return 0
	}

	if anyNaN(prevA, prevB) {
		prevA, prevB = 0, 0
	}

	if prevA <= prevB && currA > currB {
		return 1
	}

	if prevA >= prevB && currA < currB {
		return -1
	}

	return 0
}

// CrossoverInclusive is Crossover with the opposite tie policy: a touch on
// the latest bar counts (strict inequality before the cross, inclusive
// after). Because it needs the series strictly apart before the cross, the
// warm-up boundary never fires. Some strategies intentionally use this
// variant.
func CrossoverInclusive(a, b []float64) int {
	n := len(a)
	if n < 2 || len(b) < 2 || len(b) != n {
		return 0
	}

	prevA, currA := a[n-2], a[n-1]
	prevB, currB := b[n-2], b[n-1]

	if anyNaN(prevA, currA, prevB, currB) {
		return 0
	}

	if prevA < prevB && currA >= currB {
		return 1
	}

	if prevA > prevB && currA <= currB {
		return -1
	}

	return 0
}

// CrossoverLevel compares a series against a constant level.
func CrossoverLevel(values []float64, level float64) int {
	n := len(values)
	if n < 2 {
		return 0
	}

	prev, curr := values[n-2], values[n-1]
	if anyNaN(prev, curr) {
		return 0
	}

	if prev <= level && curr > level {
		return 1
	}

	if prev >= level && curr < level {
		return -1
	}

	return 0
}

// Breakout reports +1 when the latest close exceeds the highest high of the
// preceding period bars and -1 when it falls below the lowest low. Because a
// strict comparison against the prior extreme is used, a breakout fires once
// per fresh extreme and does not re-trigger at the same level.
func Breakout(highs, lows, closes []float64, period int) int {
	n := len(closes)
	if period <= 0 || n < period+1 || len(highs) != n || len(lows) != n {
		return 0
	}

	latest := closes[n-1]

	if latest > highest(highs, n-1-period, n-1) {
		return 1
	}

	if latest < lowest(lows, n-1-period, n-1) {
		return -1
	}

	return 0
}

// BandTouchReversal reports +1 when the previous bar touched or pierced the
// lower band and the latest close recovered above the previous close, -1 for
// the symmetric upper-band case. Band values are the latest ones. The
// open/low versus open/close asymmetry between the two sides follows the
// band-reversal rule as originally traded.
func BandTouchReversal(opens, lows, closes []float64, upperBand, lowerBand float64) int {
	n := len(closes)
	if n < 2 || len(opens) != n || len(lows) != n {
		return 0
	}

	prevOpen, prevLow, prevClose := opens[n-2], lows[n-2], closes[n-2]
	latest := closes[n-1]

	if anyNaN(prevOpen, prevLow, prevClose, latest, upperBand, lowerBand) {
		return 0
	}

	if (prevOpen <= lowerBand || prevLow <= lowerBand) && latest > prevClose {
		return 1
	}

	if (prevOpen >= upperBand || prevClose >= upperBand) && latest < prevClose {
		return -1
	}

	return 0
}

func anyNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
