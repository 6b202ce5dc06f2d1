package artist

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/middleware"
	requestutil "github.com/ragnarob/yiffer.xyz-contributions/internal/platform/request"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/respond"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/sec"
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listArtists)
	router.Get("/{id}", handler.getArtist)

	router.Group(func(mod chi.Router) {
		mod.Use(middleware.RequireRole(sec.RoleModerator))
		mod.Put("/{id}", handler.updateArtist)
		mod.Post("/{id}/approve", handler.approveArtist)
	})

	return router
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("q")

	artists, total, err := handler.service.ListArtists(request.Context(), search, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, artists, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid artist id"))
		return
	}

	artist, err := handler.service.GetArtist(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid artist id"))
		return
	}

	artist := &Artist{}
	if err := requestutil.DecodeJSON(request, artist); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateArtist(request.Context(), artistID, artist); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

func (handler *Handler) approveArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid artist id"))
		return
	}

	if err := handler.service.ApproveArtist(request.Context(), artistID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
