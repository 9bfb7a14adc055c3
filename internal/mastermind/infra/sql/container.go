package sql

import (
	sqlmastermind "github.com/klwxsrx/mastermind/data/sql/mastermind"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	commoncmd "github.com/klwxsrx/mastermind/internal/pkg/cmd"
	pkgevent "github.com/klwxsrx/mastermind/pkg/event"
	pkglazy "github.com/klwxsrx/mastermind/pkg/lazy"
	pkgsql "github.com/klwxsrx/mastermind/pkg/sql"
	pkgtime "github.com/klwxsrx/mastermind/pkg/time"
)

type DependencyContainer struct {
	GameEventStore pkglazy.Loader[domain.GameEventStore]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	eventDispatcher pkglazy.Loader[pkgevent.Dispatcher],
	clock pkglazy.Loader[pkgtime.Clock],
) pkglazy.Loader[*DependencyContainer] {
	return pkglazy.New(func() (*DependencyContainer, error) {
		dbMigrations.MustLoad().MustRegister(sqlmastermind.Migrations)
		return &DependencyContainer{
			GameEventStore: gameEventStoreProvider(db, eventDispatcher, clock),
		}, nil
	})
}

func gameEventStoreProvider(
	db pkglazy.Loader[pkgsql.Database],
	eventDispatcher pkglazy.Loader[pkgevent.Dispatcher],
	clock pkglazy.Loader[pkgtime.Clock],
) pkglazy.Loader[domain.GameEventStore] {
	return pkglazy.New(func() (domain.GameEventStore, error) {
		return NewGameEventStore(db.MustLoad(), eventDispatcher.MustLoad(), clock.MustLoad()), nil
	})
}
