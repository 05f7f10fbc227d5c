package handler

import (
	"context"
	"net/http"

	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/view"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, h.taskService.ListTasks)
}

func (h *Handler) AssignedToMe(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, h.taskService.AssignedToMe)
}

func (h *Handler) Reviewing(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, h.taskService.Reviewing)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request, list func(context.Context, *domain.User) ([]*domain.Task, error)) {
	tasks, err := list(r.Context(), UserFromContext(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Tasks(view.ActionList, tasks))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), UserFromContext(r.Context()), httpTaskToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view.Task(view.ActionCreate, task))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), UserFromContext(r.Context()), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Task(view.ActionRetrieve, task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req TaskPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), UserFromContext(r.Context()), id, httpTaskPatchToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view.Task(view.ActionUpdate, task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), UserFromContext(r.Context()), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
