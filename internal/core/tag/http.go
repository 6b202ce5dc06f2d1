package tag

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	requestutil "github.com/ragnarob/yiffer.xyz-contributions/internal/platform/request"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTags)
	router.Get("/{id}", handler.getTag)
	return router
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid tag id"))
		return
	}

	tag, err := handler.service.GetTag(request.Context(), tagID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}
