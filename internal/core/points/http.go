package points

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/respond"
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/scoreboard", handler.scoreboard)
	return router
}

func (handler *Handler) scoreboard(writer http.ResponseWriter, request *http.Request) {
	yearMonth := request.URL.Query().Get("yearMonth")
	limit := convert.ToIntD(request.URL.Query().Get("limit"), 50)

	standings, err := handler.service.Scoreboard(request.Context(), yearMonth, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, standings)
}
