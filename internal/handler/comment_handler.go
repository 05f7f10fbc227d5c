package handler

import (
	"net/http"

	"github.com/bagdasarian/kanban-board/internal/view"
)

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "task_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	comments, err := h.commentService.ListComments(r.Context(), UserFromContext(r.Context()), taskID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Comments(view.ActionList, comments))
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "task_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), UserFromContext(r.Context()), taskID, req.Content)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view.Comment(view.ActionCreate, comment))
}

func (h *Handler) GetComment(w http.ResponseWriter, r *http.Request) {
	taskID, commentID, err := commentPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.commentService.GetComment(r.Context(), UserFromContext(r.Context()), taskID, commentID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Comment(view.ActionRetrieve, comment))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	taskID, commentID, err := commentPath(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), UserFromContext(r.Context()), taskID, commentID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func commentPath(r *http.Request) (int64, int64, error) {
	taskID, err := pathID(r, "task_id")
	if err != nil {
		return 0, 0, err
	}
	commentID, err := pathID(r, "comment_id")
	if err != nil {
		return 0, 0, err
	}
	return taskID, commentID, nil
}
