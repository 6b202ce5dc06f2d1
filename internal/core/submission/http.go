package submission

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

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

// Routes are open: anonymous submissions are a core feature. The handler
// records the client IP instead of a user id when no one is logged in.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.submit)
	return router
}

type submitRequest struct {
	Input
	SkipApproval bool `json:"skip_approval"`
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var body submitRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := body.Input
	claims := requestutil.Claims(request)
	if claims != nil {
		userID, err := strconv.Atoi(claims.UserID)
		if err == nil {
			input.UploaderUserID = &userID
		}
		input.SkipApproval = body.SkipApproval && sec.UserRole(claims.Role).IsMod()
	} else {
		ip := middleware.RealIP(request)
		input.UploaderIP = &ip
	}

	result, err := handler.service.Submit(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}
