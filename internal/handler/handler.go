package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/service"
)

type Handler struct {
	authService    service.AuthService
	boardService   service.BoardService
	taskService    service.TaskService
	commentService service.CommentService
	log            *log.Logger
}

func NewHandler(
	authService service.AuthService,
	boardService service.BoardService,
	taskService service.TaskService,
	commentService service.CommentService,
	logger *log.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		boardService:   boardService,
		taskService:    taskService,
		commentService: commentService,
		log:            logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// decodeJSON reads the request body into dst; malformed input is a validation error.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.NewValidationError(typeErr.Field, "Incorrect type.")
	case errors.Is(err, io.EOF):
		return domain.NewValidationError(domain.NonFieldErrors, "Request body is empty.")
	default:
		return domain.NewValidationError(domain.NonFieldErrors, "Malformed JSON body.")
	}
}

// pathID parses a numeric path segment; anything else addresses no resource.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
