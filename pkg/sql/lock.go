package sql

import (
	"context"
	"fmt"
	"hash/fnv"
)

// sqlite serializes writers itself, so named locks are postgres advisory locks only

func withSessionLevelLock(ctx context.Context, name string, db Database) (connCtx context.Context, release func() error, err error) {
	if db.Driver() != DriverPostgres {
		return ctx, func() error { return nil }, nil
	}

	lockID := getLockIDByName(name)
	ctx, releaseConn, err := db.WithinSingleConnection(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get connection for %s: %w", name, err)
	}

	_, err = db.ExecContext(ctx, "select pg_advisory_lock($1)", lockID)
	if err != nil {
		releaseConn()
		return nil, nil, fmt.Errorf("get lock for %s: %w", name, err)
	}

	return ctx, func() error {
		defer releaseConn()

		var released bool
		err := db.GetContext(ctx, &released, "select pg_advisory_unlock($1)", lockID)
		if err != nil {
			return fmt.Errorf("release lock for %s: %w", name, err)
		}
		if !released {
			return fmt.Errorf("release lock for %s: lock wasn't released", name)
		}

		return nil
	}, nil
}

func withTransactionLevelLock(ctx context.Context, driver Driver, name string, tx ClientTx) error {
	if driver != DriverPostgres {
		return nil
	}

	_, err := tx.ExecContext(ctx, "select pg_advisory_xact_lock($1)", getLockIDByName(name))
	if err != nil {
		return fmt.Errorf("get lock for %s: %w", name, err)
	}

	return nil
}

func getLockIDByName(name string) int64 {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(name))
	return int64(hash.Sum64())
}
