package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"github.com/bagdasarian/kanban-board/internal/auth"
	"github.com/bagdasarian/kanban-board/internal/config"
	"github.com/bagdasarian/kanban-board/internal/db"
	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/handler"
	"github.com/bagdasarian/kanban-board/internal/handler/server"
	"github.com/bagdasarian/kanban-board/internal/logger"
	"github.com/bagdasarian/kanban-board/internal/repository/postgres"
	"github.com/bagdasarian/kanban-board/internal/service"
)

const minPasswordLength = 8

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log)

	database := db.MustLoad(cfg)
	log.Info("successfully connected to database")
	defer database.Close()

	if err := db.Migrate(context.Background(), database); err != nil {
		log.WithError(err).Fatal("failed to apply migrations")
	}

	userRepo := postgres.NewUserRepository(database)
	boardRepo := postgres.NewBoardRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	commentRepo := postgres.NewCommentRepository(database)

	passwords := auth.NewPasswordManager(minPasswordLength, bcrypt.DefaultCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, passwords, tokens)
	boardService := service.NewBoardService(boardRepo, taskRepo, userRepo, domain.ParseOwnerRemovalPolicy(cfg.Policy.OwnerRemoval))
	taskService := service.NewTaskService(taskRepo, boardRepo, userRepo, domain.ParseAssigneePolicy(cfg.Policy.AssigneeScope))
	commentService := service.NewCommentService(commentRepo, taskRepo, boardRepo)

	h := handler.NewHandler(authService, boardService, taskService, commentService, log)
	srv := server.NewServer(h, cfg.Server.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
}
