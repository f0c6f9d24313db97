package booking

import (
	"context"
	"database/sql"

	"github.com/sumonben/hotelmanagement/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so repositories work over *sql.DB,
// *dbmetrics.DB and active transactions alike
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
