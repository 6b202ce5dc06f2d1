// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package moderation

import (
	"net/http"
	"strconv"

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

	router.Post("/tag-suggestions/{id}/process", handler.processTagSuggestion)
	router.Post("/tag-suggestion-groups/{id}/process", handler.processTagSuggestionGroup)
	router.Post("/comic-problems/{id}/process", handler.processComicProblem)
	router.Post("/comic-suggestions/{id}/process", handler.processComicSuggestion)
	router.Post("/uploads/{id}/process", handler.processUpload)
	router.Post("/assignments", handler.assign)
	router.Delete("/assignments", handler.unassign)

	return router
}

// modID resolves the acting moderator's numeric user id from the JWT claims.
func modID(request *http.Request) (int, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(claims.UserID)
	if err != nil {
		return 0, apperr.Unauthorized("Invalid token subject")
	}
	return id, nil
}

func targetID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		return 0, apperr.ValidationError("Invalid id")
	}
	return id, nil
}

func (handler *Handler) processTagSuggestion(writer http.ResponseWriter, request *http.Request) {
	id, err := targetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	mod, err := modID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Approved bool `json:"approved"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ProcessTagSuggestion(request.Context(), id, mod, body.Approved); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) processTagSuggestionGroup(writer http.ResponseWriter, request *http.Request) {
	id, err := targetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	mod, err := modID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Items []struct {
			ID       int  `json:"id"`
			Approved bool `json:"approved"`
		} `json:"items"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	approvals := make(map[int]bool, len(body.Items))
	for _, item := range body.Items {
		approvals[item.ID] = item.Approved
	}

	if err := handler.service.ProcessTagSuggestionGroup(request.Context(), id, mod, approvals); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) processComicProblem(writer http.ResponseWriter, request *http.Request) {
	id, err := targetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	mod, err := modID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Approved bool `json:"approved"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ProcessComicProblem(request.Context(), id, mod, body.Approved); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) processComicSuggestion(writer http.ResponseWriter, request *http.Request) {
	id, err := targetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	mod, err := modID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Approved   bool    `json:"approved"`
		Verdict    *string `json:"verdict"`
		ModComment *string `json:"mod_comment"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ProcessComicSuggestion(request.Context(), id, mod, body.Approved, body.Verdict, body.ModComment); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) processUpload(writer http.ResponseWriter, request *http.Request) {
	id, err := targetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	mod, err := modID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Verdict string `json:"verdict"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ProcessUpload(request.Context(), id, mod, body.Verdict); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type assignmentRequest struct {
	ActionType ActionType `json:"action_type"`
	TargetID   int        `json:"target_id"`
}

func (handler *Handler) assign(writer http.ResponseWriter, request *http.Request) {
	mod, err := modID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body assignmentRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Assign(request.Context(), body.ActionType, body.TargetID, mod); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) unassign(writer http.ResponseWriter, request *http.Request) {
	var body assignmentRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Unassign(request.Context(), body.ActionType, body.TargetID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
