package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts the New Relic transaction from a context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// EnsureTransaction returns ctx unchanged when it already carries a
// transaction. Otherwise it starts a background transaction on app (if
// any) and returns the derived context with an end func.
func EnsureTransaction(ctx context.Context, app *newrelic.Application, name string) (context.Context, func()) {
	if txn := newrelic.FromContext(ctx); txn != nil || app == nil {
		return ctx, func() {}
	}

	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError reports an error to New Relic
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}
