package octav

import (
	"context"
	"log/slog"
)

// PageSize is the fixed transactions page size. One page request costs one
// credit regardless of how full the page is.
const PageSize = 250

// TransactionSource is the page-level API surface the fetcher drives. The
// concrete Client satisfies it; tests substitute scripted fakes.
type TransactionSource interface {
	GetTransactions(ctx context.Context, q TransactionsQuery) (*TransactionsResponse, error)
}

// FetchResult is the complete history plus the request count, which equals
// the credits spent.
type FetchResult struct {
	Transactions []Transaction
	Requests     int
}

// ProgressFunc is invoked after every page with the cumulative transaction
// count.
type ProgressFunc func(fetched int)

// FetchAll pulls the full filtered transaction history, page by page, until
// the API returns a short page. A short (or empty) first page is a normal
// one-request fetch, not an error. Any page failure aborts the whole fetch
// with no partial result; retrying is the caller's decision.
func FetchAll(ctx context.Context, source TransactionSource, q TransactionsQuery, onProgress ProgressFunc) (*FetchResult, error) {
	result := &FetchResult{}
	q.Limit = PageSize
	q.Offset = 0

	for {
		resp, err := source.GetTransactions(ctx, q)
		if err != nil {
			return nil, err
		}
		result.Requests++
		result.Transactions = append(result.Transactions, resp.Transactions...)

		if onProgress != nil {
			onProgress(len(result.Transactions))
		}
		slog.Debug("Fetched transactions page",
			"offset", q.Offset,
			"page_size", len(resp.Transactions),
			"total", len(result.Transactions))

		// A short page is the only termination signal the API gives.
		if len(resp.Transactions) < PageSize {
			return result, nil
		}
		q.Offset += PageSize
	}
}
