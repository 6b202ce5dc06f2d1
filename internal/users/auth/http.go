// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/middleware"
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

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/me", handler.me)
	})

	return router
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), body.Username, body.Email, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, user)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), body.Login, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Refresh(request.Context(), body.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), body.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Me(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}
