package datasource

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

// LoadCSV reads OHLCV candles for one symbol from a CSV file with a
// time,open,high,low,close,volume header. Timestamps are RFC 3339.
func LoadCSV(path, symbol string) ([]types.Candle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to open data file %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "failed to parse %s", path)
	}

	if len(records) < 2 {
		return nil, errors.Newf(errors.ErrCodeNoDataFound, "no candles in %s", path)
	}

	candles := make([]types.Candle, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 6 {
			return nil, errors.Newf(errors.ErrCodeDataParseFailed, "expected 6 columns, got %d in %s", len(record), path)
		}

		candleTime, err := time.Parse(time.RFC3339, record[0])
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "bad timestamp %q in %s", record[0], path)
		}

		fields := make([]float64, 5)
		for i := 0; i < 5; i++ {
			fields[i], err = strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "bad value %q in %s", record[i+1], path)
			}
		}

		candles = append(candles, types.Candle{
			Symbol: symbol,
			Time:   candleTime,
			Open:   fields[0],
			High:   fields[1],
			Low:    fields[2],
			Close:  fields[3],
			Volume: fields[4],
		})
	}

	return candles, nil
}
