// Package journal persists orders and trades to DuckDB so a replay leaves an
// inspectable record behind.
package journal

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"go.uber.org/zap"
)

// Journal stores orders and executed trades.
type Journal struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// New opens an in-memory DuckDB journal.
func New(log *logger.Logger) (*Journal, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to open database", err)
	}

	return &Journal{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Initialize creates the orders and trades tables.
func (j *Journal) Initialize() error {
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			symbol TEXT,
			side TEXT,
			quantity DOUBLE,
			price DOUBLE,
			timestamp TIMESTAMP,
			status TEXT,
			reason TEXT,
			message TEXT,
			strategy_name TEXT
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to create orders table", err)
	}

	_, err = j.db.Exec(`
		CREATE TABLE IF NOT EXISTS trades (
			order_id TEXT,
			symbol TEXT,
			side TEXT,
			executed_at TIMESTAMP,
			executed_qty DOUBLE,
			executed_price DOUBLE,
			pnl DOUBLE,
			reason TEXT,
			message TEXT,
			strategy_name TEXT
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to create trades table", err)
	}

	return nil
}

// RecordOrder inserts a placed order.
func (j *Journal) RecordOrder(handle types.OrderHandle, reason types.Reason, strategyName string) error {
	query := j.sq.
		Insert("orders").
		Columns("order_id", "symbol", "side", "quantity", "price", "timestamp", "status", "reason", "message", "strategy_name").
		Values(handle.ID, handle.Symbol, string(handle.Side), handle.Quantity, handle.Price, handle.Time, string(handle.Status), reason.Reason, reason.Message, strategyName).
		RunWith(j.db)

	if _, err := query.Exec(); err != nil {
		return errors.Wrap(errors.ErrCodeJournalWriteFailed, "failed to insert order", err)
	}

	return nil
}

// RecordTrade inserts an executed fill.
func (j *Journal) RecordTrade(trade types.Trade) error {
	query := j.sq.
		Insert("trades").
		Columns("order_id", "symbol", "side", "executed_at", "executed_qty", "executed_price", "pnl", "reason", "message", "strategy_name").
		Values(trade.Order.ID, trade.Order.Symbol, string(trade.Order.Side), trade.ExecutedAt, trade.ExecutedQty, trade.ExecutedPrice, trade.PnL, trade.Reason.Reason, trade.Reason.Message, trade.StrategyName).
		RunWith(j.db)

	if _, err := query.Exec(); err != nil {
		return errors.Wrap(errors.ErrCodeJournalWriteFailed, "failed to insert trade", err)
	}

	return nil
}

// Trades returns all recorded trades for a symbol in execution order. An
// empty symbol returns everything.
func (j *Journal) Trades(symbol string) ([]types.Trade, error) {
	query := j.sq.
		Select("order_id", "symbol", "side", "executed_at", "executed_qty", "executed_price", "pnl", "reason", "message", "strategy_name").
		From("trades").
		OrderBy("executed_at").
		RunWith(j.db)

	if symbol != "" {
		query = query.Where(squirrel.Eq{"symbol": symbol})
	}

	rows, err := query.Query()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeJournalQueryFailed, "failed to query trades", err)
	}
	defer rows.Close()

	var trades []types.Trade

	for rows.Next() {
		var trade types.Trade

		var side string

		err := rows.Scan(
			&trade.Order.ID, &trade.Order.Symbol, &side,
			&trade.ExecutedAt, &trade.ExecutedQty, &trade.ExecutedPrice,
			&trade.PnL, &trade.Reason.Reason, &trade.Reason.Message, &trade.StrategyName,
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeJournalQueryFailed, "failed to scan trade", err)
		}

		trade.Order.Side = types.PurchaseType(side)
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeJournalQueryFailed, "trade rows error", err)
	}

	return trades, nil
}

// RealizedPnL sums the realized profit and loss across all recorded trades.
func (j *Journal) RealizedPnL() (float64, error) {
	row := j.sq.
		Select("COALESCE(SUM(pnl), 0)").
		From("trades").
		RunWith(j.db).
		QueryRow()

	var pnl float64
	if err := row.Scan(&pnl); err != nil {
		return 0, errors.Wrap(errors.ErrCodeJournalQueryFailed, "failed to sum pnl", err)
	}

	return pnl, nil
}

// Close releases the underlying database.
func (j *Journal) Close() error {
	if err := j.db.Close(); err != nil {
		j.logger.Error("failed to close journal", zap.Error(err))

		return err
	}

	return nil
}
