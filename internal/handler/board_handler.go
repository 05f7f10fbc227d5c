package handler

import (
	"net/http"

	"github.com/bagdasarian/kanban-board/internal/view"
)

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boardService.ListBoards(r.Context(), UserFromContext(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Boards(view.ActionList, boards))
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req BoardRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), UserFromContext(r.Context()), req.Title, req.Members)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view.Board(view.ActionCreate, board))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	board, err := h.boardService.GetBoard(r.Context(), UserFromContext(r.Context()), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Board(view.ActionRetrieve, board))
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req BoardPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	board, err := h.boardService.UpdateBoard(r.Context(), UserFromContext(r.Context()), id, httpBoardPatchToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Board(view.ActionUpdate, board))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.boardService.DeleteBoard(r.Context(), UserFromContext(r.Context()), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
