package http

import (
	"net/http"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	pkghttp "github.com/klwxsrx/mastermind/pkg/http"
)

type StartGameHandler struct {
	gameService service.Game
}

func NewStartGameHandler(gameService service.Game) StartGameHandler {
	return StartGameHandler{gameService: gameService}
}

func (h StartGameHandler) Method() string {
	return http.MethodPost
}

func (h StartGameHandler) Path() string {
	return "/games"
}

func (h StartGameHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[StartGameIn](), err)
	if err != nil {
		return err
	}

	var secret *domain.Code
	if in.Secret != nil {
		code := domain.CodeOf(in.Secret...)
		secret = &code
	}

	gameID, err := h.gameService.Start(r.Context(), service.StartGameIn{
		Secret:        secret,
		CodeLength:    in.CodeLength,
		TotalAttempts: in.TotalAttempts,
		AvailablePegs: domain.PegSetOf(in.AvailablePegs...),
	})
	if err != nil {
		return wrapGameError(err)
	}

	w.SetStatusCode(http.StatusCreated).SetJSONBody(StartGameOut{ID: gameID.String()})
	return nil
}
