package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/mastermind/pkg/env"
	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/pulsar"
	"github.com/klwxsrx/mastermind/pkg/sql"
)

func InitEnv() {
	err := env.LoadDotEnv()
	if err != nil {
		panic(fmt.Errorf("load env files: %w", err))
	}
}

func InitLogger() log.Logger {
	logLevelStr, err := env.Parse[string]("LOG_LEVEL")
	if err != nil {
		return log.New(log.LevelInfo)
	}

	logLevel, ok := log.ParseLevel(logLevelStr)
	if !ok {
		logLevel = log.LevelInfo
	}

	return log.New(logLevel)
}

func MustInitSQL(ctx context.Context, logger log.Logger) sql.Database {
	driver := sql.Driver(env.Must(env.ParseWithDefault("SQL_DRIVER", string(sql.DriverPostgres))))

	sqlConfig := sql.Config{
		Driver:             driver,
		DSN:                sql.DSN{},
		Path:               "",
		MaxOpenConnections: env.Must(env.ParseWithDefault("SQL_MAX_OPEN_CONNECTIONS", 0)),
		MaxIdleConnections: env.Must(env.ParseWithDefault("SQL_MAX_IDLE_CONNECTIONS", 0)),
		ConnectionTimeout:  env.Must(env.ParseWithDefault[time.Duration]("SQL_CONNECTION_TIMEOUT", 0)),
	}
	switch driver {
	case sql.DriverSQLite:
		sqlConfig.Path = env.Must(env.ParseWithDefault("SQL_PATH", sql.SQLiteInMemoryPath))
	default:
		sqlConfig.DSN = sql.DSN{
			User:     env.Must(env.Parse[string]("SQL_USER")),
			Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
			Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
			Database: env.Must(env.Parse[string]("SQL_DATABASE")),
		}
	}

	db, err := sql.NewDatabase(ctx, sqlConfig, logger)
	if err != nil {
		panic(fmt.Errorf("open sql connection: %w", err))
	}

	return db
}

func MustInitPulsarMessageBroker(ctx context.Context, logger log.Logger) *pulsar.MessageBroker {
	config := pulsar.Config{
		Address:           env.Must(env.Parse[string]("PULSAR_ADDRESS")),
		ConnectionTimeout: env.Must(env.ParseWithDefault[time.Duration]("PULSAR_CONNECTION_TIMEOUT", 0)),
	}

	messageBroker, err := pulsar.NewMessageBroker(ctx, config, logger)
	if err != nil {
		panic(fmt.Errorf("open pulsar connection: %w", err))
	}

	return messageBroker
}
