package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestAllGainsSaturates() {
	out := RSI([]float64{1, 2, 3, 4, 5}, 3)

	suite.True(math.IsNaN(out[2]))
	suite.Equal(100.0, out[3])
	suite.Equal(100.0, out[4])
}

func (suite *RSITestSuite) TestAllLossesSaturates() {
	out := RSI([]float64{5, 4, 3, 2, 1}, 3)
	suite.Equal(0.0, out[4])
}

func (suite *RSITestSuite) TestFlatSeriesIsNeutral() {
	out := RSI([]float64{5, 5, 5, 5, 5}, 3)
	suite.Equal(50.0, out[4])
}

func (suite *RSITestSuite) TestBounded() {
	values := []float64{44, 44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.1, 45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28}

	out := RSI(values, 14)
	last := out[len(out)-1]
	suite.False(math.IsNaN(last))
	suite.GreaterOrEqual(last, 0.0)
	suite.LessOrEqual(last, 100.0)
}

func (suite *RSITestSuite) TestInsufficientData() {
	out := RSI([]float64{1, 2, 3}, 3)
	for _, v := range out {
		suite.True(math.IsNaN(v))
	}
}
