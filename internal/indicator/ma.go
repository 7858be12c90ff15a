package indicator

import "math"

// SMA computes the simple moving average. The first period-1 positions are NaN.
func SMA(values []float64, period int) []float64 {
	out := warmup(len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}

		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}

	return out
}

// EMA computes the exponential moving average, seeded with the SMA of the
// first period values. The first period-1 positions are NaN.
func EMA(values []float64, period int) []float64 {
	out := warmup(len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}

	prev := seed / float64(period)
	out[period-1] = prev

	k := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(values); i++ {
		prev = (values[i]-prev)*k + prev
		out[i] = prev
	}

	return out
}

// warmup allocates a series of n NaN values.
func warmup(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}

// highest returns the maximum of values[from:to] (to exclusive).
func highest(values []float64, from, to int) float64 {
	max := values[from]
	for i := from + 1; i < to; i++ {
		if values[i] > max {
			max = values[i]
		}
	}

	return max
}

// lowest returns the minimum of values[from:to] (to exclusive).
func lowest(values []float64, from, to int) float64 {
	min := values[from]
	for i := from + 1; i < to; i++ {
		if values[i] < min {
			min = values[i]
		}
	}

	return min
}
