package handler

import (
	"net/http"

	"github.com/forgo/hangar/internal/model"
	"github.com/forgo/hangar/internal/service"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /users: every registered user with id and sub
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, users)
}

// MethodNotAllowed rejects the non-GET verbs on /users
func (h *UserHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, model.NewMethodNotAllowedError())
}
