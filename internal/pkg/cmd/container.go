package cmd

import (
	"context"

	commonhttp "github.com/klwxsrx/mastermind/internal/pkg/http"
	"github.com/klwxsrx/mastermind/pkg/cmd"
	"github.com/klwxsrx/mastermind/pkg/env"
	"github.com/klwxsrx/mastermind/pkg/event"
	"github.com/klwxsrx/mastermind/pkg/http"
	"github.com/klwxsrx/mastermind/pkg/lazy"
	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/message"
	"github.com/klwxsrx/mastermind/pkg/metric"
	"github.com/klwxsrx/mastermind/pkg/observability"
	"github.com/klwxsrx/mastermind/pkg/pulsar"
	"github.com/klwxsrx/mastermind/pkg/sql"
	"github.com/klwxsrx/mastermind/pkg/time"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	MessageStorage    lazy.Loader[message.Storage]
	MessageOutbox     lazy.Loader[message.Outbox]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Clock             lazy.Loader[time.Clock]
	Observer          lazy.Loader[observability.Observer]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]

	messageBrokerImpl lazy.Loader[*pulsar.MessageBroker]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	cmd.InitEnv()

	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)
	msgStorage := sqlMessageStorageProvider(db, dbMigrations)

	msgBrokerImpl := pulsarMessageBrokerProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		MessageStorage:    msgStorage,
		MessageOutbox:     messageOutboxProvider(msgStorage, msgBrokerImpl, metrics, logger),
		DBMigrations:      dbMigrations,
		DB:                db,
		Clock:             clockProvider(),
		Observer:          observer,
		Metrics:           metrics,
		Logger:            logger,
		messageBrokerImpl: msgBrokerImpl,
	}
}

// EventDispatcher stores events of the domain in the message storage within the caller transaction
func (i *InfrastructureContainer) EventDispatcher(domainName string) lazy.Loader[event.Dispatcher] {
	return lazy.New(func() (event.Dispatcher, error) {
		return message.NewEventDispatcher(
			domainName,
			i.MessageStorage.MustLoad(),
			i.Clock.MustLoad(),
			message.WithEventObservability(i.Observer.MustLoad()),
			message.WithEventMetrics(i.Metrics.MustLoad()),
			message.WithEventLogging(i.Logger.MustLoad(), log.LevelDebug, log.LevelWarn),
		), nil
	})
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.messageBrokerImpl.IfLoaded(func(broker *pulsar.MessageBroker) { broker.Close() })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewStub(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return cmd.InitLogger(), nil
	})
}

func clockProvider() lazy.Loader[time.Clock] {
	return lazy.New(func() (time.Clock, error) {
		return time.NewClock(), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		return cmd.MustInitSQL(ctx, logger.MustLoad()), nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func sqlMessageStorageProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[SQLMigrations],
) lazy.Loader[message.Storage] {
	return lazy.New(func() (message.Storage, error) {
		dbMigrations.MustLoad().MustRegister(sql.MessageStorageMigrations(db.MustLoad().Driver()))
		return sql.NewMessageStorage(db.MustLoad()), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		return http.NewServer(
			http.WithServerAddress(env.Must(env.ParseWithDefault("HTTP_ADDRESS", http.DefaultServerAddress))),
			http.WithHealthCheck(nil),
			http.WithCORSHandler(),
			http.WithNotFoundHandler(),
			http.WithObservability(
				observer.MustLoad(),
				http.RequestIDHeaderExtractor(commonhttp.RequestIDHeader),
				http.RequestIDRandomUUIDExtractor(),
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError, http.HealthPath),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelDebug, log.LevelWarn),
		), nil
	})
}

func pulsarMessageBrokerProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[*pulsar.MessageBroker] {
	return lazy.New(func() (*pulsar.MessageBroker, error) {
		return cmd.MustInitPulsarMessageBroker(ctx, logger.MustLoad()), nil
	})
}

func messageOutboxProvider(
	msgStorage lazy.Loader[message.Storage],
	msgBroker lazy.Loader[*pulsar.MessageBroker],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[message.Outbox] {
	return lazy.New(func() (message.Outbox, error) {
		return message.NewOutbox(
			msgStorage.MustLoad(),
			msgBroker.MustLoad(),
			message.WithOutboxMetrics(metrics.MustLoad()),
			message.WithOutboxLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
