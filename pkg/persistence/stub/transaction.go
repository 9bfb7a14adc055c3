package stub

import (
	"context"

	"github.com/klwxsrx/mastermind/pkg/persistence"
)

type transaction struct{}

func NewTransaction() persistence.Transaction {
	return transaction{}
}

func (transaction) WithinContext(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	return fn(ctx)
}
