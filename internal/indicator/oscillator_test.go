package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type OscillatorTestSuite struct {
	suite.Suite
}

func TestOscillatorSuite(t *testing.T) {
	suite.Run(t, new(OscillatorTestSuite))
}

func (suite *OscillatorTestSuite) TestAroonUptrend() {
	// Monotonic rise: the newest bar is always the highest high
	highs := []float64{1, 2, 3, 4, 5, 6}
	lows := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}

	up, down := Aroon(highs, lows, 4)

	suite.True(math.IsNaN(up[3]))
	suite.Equal(100.0, up[5])
	suite.Equal(0.0, down[5])
}

func (suite *OscillatorTestSuite) TestAroonDowntrend() {
	highs := []float64{6, 5, 4, 3, 2, 1}
	lows := []float64{5.5, 4.5, 3.5, 2.5, 1.5, 0.5}

	up, down := Aroon(highs, lows, 4)

	suite.Equal(0.0, up[5])
	suite.Equal(100.0, down[5])
}

func (suite *OscillatorTestSuite) TestStochasticBounds() {
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)

	for i := 0; i < n; i++ {
		highs[i] = float64(i) + 2
		lows[i] = float64(i)
		closes[i] = float64(i) + 1
	}

	slowK, slowD := Stochastic(highs, lows, closes, 5, 3, 3)

	last := len(closes) - 1
	suite.False(math.IsNaN(slowK[last]))
	suite.False(math.IsNaN(slowD[last]))
	suite.GreaterOrEqual(slowK[last], 0.0)
	suite.LessOrEqual(slowK[last], 100.0)
}

func (suite *OscillatorTestSuite) TestStochasticFlatRange() {
	flat := []float64{5, 5, 5, 5, 5, 5, 5, 5}

	slowK, _ := Stochastic(flat, flat, flat, 3, 2, 2)
	suite.Equal(50.0, slowK[len(flat)-1])
}

func (suite *OscillatorTestSuite) TestStochasticInsufficientData() {
	values := []float64{1, 2}
	slowK, slowD := Stochastic(values, values, values, 5, 3, 3)

	for i := range values {
		suite.True(math.IsNaN(slowK[i]))
		suite.True(math.IsNaN(slowD[i]))
	}
}
