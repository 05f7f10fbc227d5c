package handler

import (
	"net/http"

	"github.com/bagdasarian/kanban-board/internal/view"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.authService.Register(r.Context(), httpRegistrationToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainSessionToHTTP(session))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSessionToHTTP(session))
}

func (h *Handler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.CheckEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.User(user))
}
