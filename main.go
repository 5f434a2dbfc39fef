package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/emmanuel20-pro/Actividad-3/auth"
	"github.com/emmanuel20-pro/Actividad-3/config"
	"github.com/emmanuel20-pro/Actividad-3/handlers"
	"github.com/emmanuel20-pro/Actividad-3/models"
	"github.com/emmanuel20-pro/Actividad-3/storage"
	"github.com/emmanuel20-pro/Actividad-3/tasks"
	"github.com/emmanuel20-pro/Actividad-3/users"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	userStore := storage.NewCollection[models.User](cfg.UsersFile)
	taskStore := storage.NewCollection[models.Task](cfg.TasksFile)

	tokens := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	h := handlers.NewHandlers(users.NewService(userStore), tasks.NewRepository(taskStore), tokens, logger)

	router := handlers.NewRouter(h, tokens, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
