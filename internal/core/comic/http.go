package comic

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
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/query"
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.getComic)

	router.Group(func(mod chi.Router) {
		mod.Use(middleware.RequireRole(sec.RoleModerator))
		mod.Get("/", handler.listModPanel)
		mod.Put("/{id}", handler.updateComic)
		mod.Put("/{id}/error-text", handler.setErrorText)
		mod.Put("/{id}/publish-status", handler.setPublishStatus)
	})

	return router
}

func (handler *Handler) getComic(writer http.ResponseWriter, request *http.Request) {
	comicID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid comic id"))
		return
	}

	comic, err := handler.service.GetComic(request.Context(), comicID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comic)
}

func (handler *Handler) listModPanel(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	statuses := slice.Map(query.StringSlice(request.URL.Query().Get("statuses")),
		func(s string) PublishStatus { return PublishStatus(s) })

	comics, total, err := handler.service.ListForModPanel(request.Context(), statuses, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, comics, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) updateComic(writer http.ResponseWriter, request *http.Request) {
	comicID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid comic id"))
		return
	}

	comic := &Comic{}
	if err := requestutil.DecodeJSON(request, comic); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateComic(request.Context(), comicID, comic); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comic)
}

func (handler *Handler) setPublishStatus(writer http.ResponseWriter, request *http.Request) {
	comicID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid comic id"))
		return
	}

	body := struct {
		PublishStatus PublishStatus `json:"publish_status"`
	}{}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetPublishStatus(request.Context(), comicID, body.PublishStatus); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setErrorText(writer http.ResponseWriter, request *http.Request) {
	comicID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid comic id"))
		return
	}

	body := struct {
		ErrorText *string `json:"error_text"`
	}{}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetErrorText(request.Context(), comicID, body.ErrorText); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
