package http

import (
	"net/http"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	pkghttp "github.com/klwxsrx/mastermind/pkg/http"
)

type GetGameHandler struct {
	gameService service.Game
}

func NewGetGameHandler(gameService service.Game) GetGameHandler {
	return GetGameHandler{gameService: gameService}
}

func (h GetGameHandler) Method() string {
	return http.MethodGet
}

func (h GetGameHandler) Path() string {
	return "/games/{gameID}"
}

func (h GetGameHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	gameID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("gameID"), err)
	if err != nil {
		return err
	}

	data, err := h.gameService.Get(r.Context(), domain.GameID(gameID))
	if err != nil {
		return wrapGameError(err)
	}

	w.SetJSONBody(ToGameOut(data))
	return nil
}
