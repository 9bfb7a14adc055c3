package mastermind

import (
	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	"github.com/klwxsrx/mastermind/internal/mastermind/infra/http"
	"github.com/klwxsrx/mastermind/internal/mastermind/infra/secret"
	"github.com/klwxsrx/mastermind/internal/mastermind/infra/sql"
	commoncmd "github.com/klwxsrx/mastermind/internal/pkg/cmd"
	pkgevent "github.com/klwxsrx/mastermind/pkg/event"
	pkghttp "github.com/klwxsrx/mastermind/pkg/http"
	pkglazy "github.com/klwxsrx/mastermind/pkg/lazy"
	pkgpersistence "github.com/klwxsrx/mastermind/pkg/persistence"
	pkgsql "github.com/klwxsrx/mastermind/pkg/sql"
	pkgtime "github.com/klwxsrx/mastermind/pkg/time"
)

type DependencyContainer struct {
	GameService      pkglazy.Loader[service.Game]
	StartGameHandler pkglazy.Loader[http.StartGameHandler]
	MakeGuessHandler pkglazy.Loader[http.MakeGuessHandler]
	GetGameHandler   pkglazy.Loader[http.GetGameHandler]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	eventDispatcher pkglazy.Loader[pkgevent.Dispatcher],
	clock pkglazy.Loader[pkgtime.Clock],
) *DependencyContainer {
	transaction := transactionProvider(db)
	sqlContainer := sql.NewDependencyContainer(db, dbMigrations, eventDispatcher, clock)

	gameService := gameServiceProvider(transaction, sqlContainer)

	return &DependencyContainer{
		GameService: gameService,
		StartGameHandler: pkglazy.New(func() (http.StartGameHandler, error) {
			return http.NewStartGameHandler(gameService.MustLoad()), nil
		}),
		MakeGuessHandler: pkglazy.New(func() (http.MakeGuessHandler, error) {
			return http.NewMakeGuessHandler(gameService.MustLoad()), nil
		}),
		GetGameHandler: pkglazy.New(func() (http.GetGameHandler, error) {
			return http.NewGetGameHandler(gameService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.RegisterErrorStatusResolvers(http.ErrorStatus)
	registry.Register(c.StartGameHandler.MustLoad())
	registry.Register(c.MakeGuessHandler.MustLoad())
	registry.Register(c.GetGameHandler.MustLoad())
}

func transactionProvider(
	db pkglazy.Loader[pkgsql.Database],
) pkglazy.Loader[pkgpersistence.Transaction] {
	return pkglazy.New(func() (pkgpersistence.Transaction, error) {
		return pkgsql.NewTransaction(
			db.MustLoad(),
			domain.Name,
			nil,
		), nil
	})
}

func gameServiceProvider(
	transaction pkglazy.Loader[pkgpersistence.Transaction],
	sqlContainer pkglazy.Loader[*sql.DependencyContainer],
) pkglazy.Loader[service.Game] {
	return pkglazy.New(func() (service.Game, error) {
		return service.NewGameService(
			transaction.MustLoad(),
			sqlContainer.MustLoad().GameEventStore.MustLoad(),
			secret.NewGenerator(),
		), nil
	})
}
