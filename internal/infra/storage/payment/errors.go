package payment

import "errors"

var (
	// ErrPaymentNotFound is returned when a payment does not exist
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrDuplicateTransactionID is returned when a transaction id is
	// already taken; transaction ids are unique system-wide
	ErrDuplicateTransactionID = errors.New("payment.repository: duplicate transaction id")

	// ErrBuildQuery is returned when building an SQL query fails
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery is returned when executing an SQL query fails
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
