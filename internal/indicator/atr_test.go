package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ATRTestSuite struct {
	suite.Suite
}

func TestATRSuite(t *testing.T) {
	suite.Run(t, new(ATRTestSuite))
}

func (suite *ATRTestSuite) TestConstantTrueRange() {
	// Each bar gaps up by 1 with a 1-point range: TR is 1.5 everywhere
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)

	for i := 0; i < n; i++ {
		highs[i] = float64(i) + 1
		lows[i] = float64(i)
		closes[i] = float64(i) + 0.5
	}

	out := ATR(highs, lows, closes, 14)

	suite.True(math.IsNaN(out[13]))
	suite.InDelta(1.5, out[14], 1e-9)
	suite.InDelta(1.5, out[19], 1e-9)
}

func (suite *ATRTestSuite) TestFlatMarket() {
	n := 10
	flat := make([]float64, n)

	for i := range flat {
		flat[i] = 100
	}

	out := ATR(flat, flat, flat, 5)
	suite.Equal(0.0, out[9])
}

func (suite *ATRTestSuite) TestInsufficientData() {
	values := []float64{1, 2, 3}
	out := ATR(values, values, values, 14)

	for _, v := range out {
		suite.True(math.IsNaN(v))
	}
}
