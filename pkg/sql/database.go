package sql

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/klwxsrx/mastermind/pkg/log"
)

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"

	SQLiteInMemoryPath = ":memory:"

	defaultConnectionTimeout = 20 * time.Second
)

type (
	Driver string

	Config struct {
		Driver             Driver
		DSN                DSN
		Path               string
		MaxOpenConnections int
		MaxIdleConnections int
		ConnectionTimeout  time.Duration
	}

	DSN struct {
		User     string
		Password string
		Address  string
		Database string
	}
)

func (d *DSN) String() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=disable", d.User, d.Password, d.Address, d.Database)
}

type (
	Client interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
	}

	ClientTx interface {
		Client
		Commit() error
		Rollback() error
	}

	TxClient interface {
		Client
		Begin(ctx context.Context) (ClientTx, error)
	}

	Database interface {
		TxClient
		Driver() Driver
		WithinSingleConnection(ctx context.Context) (_ context.Context, release func(), _ error)
		Close(ctx context.Context)
	}
)

type database struct {
	db     *sqlx.DB
	driver Driver
	logger log.Logger
}

func NewDatabase(ctx context.Context, config Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	db, err := openConnection(ctx, config)
	if err != nil {
		return nil, err
	}

	enableSquirrelPlaceholderFormat(config.Driver)
	return &database{
		db:     db,
		driver: config.Driver,
		logger: logger,
	}, nil
}

func (d *database) Driver() Driver {
	return d.driver
}

func (d *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.client(ctx).ExecContext(ctx, query, args...)
}

func (d *database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).GetContext(ctx, dest, query, args...)
}

func (d *database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).SelectContext(ctx, dest, query, args...)
}

func (d *database) Begin(ctx context.Context) (ClientTx, error) {
	var (
		tx  *sqlx.Tx
		err error
	)
	if conn, ok := ctx.Value(dbConnectionContextKey).(*sqlx.Conn); ok {
		tx, err = conn.BeginTxx(ctx, nil)
	} else {
		tx, err = d.db.BeginTxx(ctx, nil)
	}
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (d *database) WithinSingleConnection(ctx context.Context) (context.Context, func(), error) {
	if _, ok := ctx.Value(dbConnectionContextKey).(*sqlx.Conn); ok {
		return ctx, func() {}, nil
	}

	conn, err := d.db.Connx(ctx)
	if err != nil {
		return nil, nil, err
	}

	return context.WithValue(ctx, dbConnectionContextKey, conn), func() {
		err := conn.Close()
		if err != nil {
			d.logger.WithError(err).Error(ctx, "failed to release sql connection")
		}
	}, nil
}

func (d *database) Close(ctx context.Context) {
	err := d.db.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func (d *database) client(ctx context.Context) Client {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.ClientTx
	}
	if conn, ok := ctx.Value(dbConnectionContextKey).(*sqlx.Conn); ok {
		return conn
	}

	return d.db
}

func openConnection(ctx context.Context, config Config) (*sqlx.DB, error) {
	var dataSourceName string
	switch config.Driver {
	case DriverPostgres:
		dataSourceName = config.DSN.String()
	case DriverSQLite:
		dataSourceName = config.Path
		if dataSourceName == "" {
			dataSourceName = SQLiteInMemoryPath
		}

		// sqlite allows a single writer, in-memory database lives within its connection
		config.MaxOpenConnections = 1
		config.MaxIdleConnections = 1
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", config.Driver)
	}

	db, err := sqlx.Open(string(config.Driver), dataSourceName)
	if err != nil {
		return nil, err
	}
	if config.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(config.MaxOpenConnections)
	}
	if config.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(config.MaxIdleConnections)
	}
	if config.Driver == DriverSQLite {
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	}

	retry := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithRandomizationFactor(0),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(config.ConnectionTimeout/4),
		backoff.WithMaxElapsedTime(config.ConnectionTimeout),
	)

	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(retry, ctx))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

var squirrelPlaceholderOnceDoer = &sync.Once{}

func enableSquirrelPlaceholderFormat(driver Driver) {
	squirrelPlaceholderOnceDoer.Do(func() {
		if driver == DriverPostgres {
			sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		}
	})
}
