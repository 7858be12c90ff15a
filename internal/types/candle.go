package types

import "time"

// Candle is one OHLCV aggregate over a fixed interval.
type Candle struct {
	Symbol string    `yaml:"symbol" json:"symbol" csv:"symbol"`
	Time   time.Time `yaml:"time" json:"time" csv:"time"`
	Open   float64   `yaml:"open" json:"open" csv:"open"`
	High   float64   `yaml:"high" json:"high" csv:"high"`
	Low    float64   `yaml:"low" json:"low" csv:"low"`
	Close  float64   `yaml:"close" json:"close" csv:"close"`
	Volume float64   `yaml:"volume" json:"volume" csv:"volume"`
}

// Closes extracts the close series from a bar window, oldest first.
func Closes(window []Candle) []float64 {
	values := make([]float64, len(window))
	for i, candle := range window {
		values[i] = candle.Close
	}

	return values
}

// Opens extracts the open series from a bar window, oldest first.
func Opens(window []Candle) []float64 {
	values := make([]float64, len(window))
	for i, candle := range window {
		values[i] = candle.Open
	}

	return values
}

// Highs extracts the high series from a bar window, oldest first.
func Highs(window []Candle) []float64 {
	values := make([]float64, len(window))
	for i, candle := range window {
		values[i] = candle.High
	}

	return values
}

// Lows extracts the low series from a bar window, oldest first.
func Lows(window []Candle) []float64 {
	values := make([]float64, len(window))
	for i, candle := range window {
		values[i] = candle.Low
	}

	return values
}

// Volumes extracts the volume series from a bar window, oldest first.
func Volumes(window []Candle) []float64 {
	values := make([]float64, len(window))
	for i, candle := range window {
		values[i] = candle.Volume
	}

	return values
}
