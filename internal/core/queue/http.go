package queue

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/middleware"
	requestutil "github.com/ragnarob/yiffer.xyz-contributions/internal/platform/request"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/respond"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes are moderator-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleModerator))

	router.Get("/", handler.list)
	router.Post("/move", handler.move)
	router.Post("/recalculate", handler.recalculate)
	router.Post("/{id}/schedule", handler.schedule)
	router.Post("/{id}/unschedule", handler.unschedule)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) move(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		ComicID   int       `json:"comic_id"`
		Direction Direction `json:"direction"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Move(request.Context(), body.ComicID, body.Direction); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// recalculate runs synchronously: a moderator asking for it explicitly wants
// to see the result.
func (handler *Handler) recalculate(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Recalculate(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) schedule(writer http.ResponseWriter, request *http.Request) {
	comicID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid comic id"))
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	modID, err := strconv.Atoi(claims.UserID)
	if err != nil {
		respond.Error(writer, request, apperr.Unauthorized("Invalid token subject"))
		return
	}

	var body struct {
		PublishDate *time.Time `json:"publish_date"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Schedule(request.Context(), comicID, modID, body.PublishDate); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) unschedule(writer http.ResponseWriter, request *http.Request) {
	comicID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid comic id"))
		return
	}

	if err := handler.service.Unschedule(request.Context(), comicID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
