package server

import (
	"net/http"

	"github.com/bagdasarian/kanban-board/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /healthz", h.Health)

	mux.HandleFunc("POST /api/registration/{$}", h.Register)
	mux.HandleFunc("POST /api/login/{$}", h.Login)
	mux.HandleFunc("GET /api/email-check/{$}", h.CheckEmail)

	mux.HandleFunc("GET /api/boards/{$}", h.RequireAuth(h.ListBoards))
	mux.HandleFunc("POST /api/boards/{$}", h.RequireAuth(h.CreateBoard))
	mux.HandleFunc("GET /api/boards/{id}/{$}", h.RequireAuth(h.GetBoard))
	mux.HandleFunc("PATCH /api/boards/{id}/{$}", h.RequireAuth(h.UpdateBoard))
	mux.HandleFunc("DELETE /api/boards/{id}/{$}", h.RequireAuth(h.DeleteBoard))

	mux.HandleFunc("GET /api/tasks/{$}", h.RequireAuth(h.ListTasks))
	mux.HandleFunc("POST /api/tasks/{$}", h.RequireAuth(h.CreateTask))
	mux.HandleFunc("GET /api/tasks/assigned-to-me/{$}", h.RequireAuth(h.AssignedToMe))
	mux.HandleFunc("GET /api/tasks/reviewing/{$}", h.RequireAuth(h.Reviewing))
	mux.HandleFunc("GET /api/tasks/{id}/{$}", h.RequireAuth(h.GetTask))
	mux.HandleFunc("PATCH /api/tasks/{id}/{$}", h.RequireAuth(h.UpdateTask))
	mux.HandleFunc("DELETE /api/tasks/{id}/{$}", h.RequireAuth(h.DeleteTask))

	mux.HandleFunc("GET /api/tasks/{task_id}/comments/{$}", h.RequireAuth(h.ListComments))
	mux.HandleFunc("POST /api/tasks/{task_id}/comments/{$}", h.RequireAuth(h.CreateComment))
	mux.HandleFunc("GET /api/tasks/{task_id}/comments/{comment_id}/{$}", h.RequireAuth(h.GetComment))
	mux.HandleFunc("DELETE /api/tasks/{task_id}/comments/{comment_id}/{$}", h.RequireAuth(h.DeleteComment))
}
