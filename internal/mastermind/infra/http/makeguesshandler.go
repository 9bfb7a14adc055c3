package http

import (
	"net/http"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	pkghttp "github.com/klwxsrx/mastermind/pkg/http"
)

type MakeGuessHandler struct {
	gameService service.Game
}

func NewMakeGuessHandler(gameService service.Game) MakeGuessHandler {
	return MakeGuessHandler{gameService: gameService}
}

func (h MakeGuessHandler) Method() string {
	return http.MethodPost
}

func (h MakeGuessHandler) Path() string {
	return "/games/{gameID}/guesses"
}

func (h MakeGuessHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	gameID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("gameID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[MakeGuessIn](), err)
	if err != nil {
		return err
	}

	result, err := h.gameService.Guess(r.Context(), domain.GameID(gameID), domain.CodeOf(in.Guess...))
	if err != nil {
		return wrapGameError(err)
	}

	w.SetJSONBody(MakeGuessOut{
		FeedbackOut: ToFeedbackOut(result.Feedback),
		State:       result.State.String(),
		Attempts:    result.Attempts,
	})
	return nil
}
