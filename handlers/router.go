package handlers

import (
	"log/slog"

	"github.com/emmanuel20-pro/Actividad-3/auth"
	"github.com/emmanuel20-pro/Actividad-3/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. Everything under /tareas goes through
// the authentication middleware first.
func NewRouter(h *Handlers, tokens *auth.Service, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))

	router.HandleFunc("/register", h.Register).Methods("POST")
	router.HandleFunc("/login", h.Login).Methods("POST")

	protected := router.PathPrefix("/tareas").Subrouter()
	protected.Use(middleware.Authenticate(tokens))
	protected.HandleFunc("", h.ListTasks).Methods("GET")
	protected.HandleFunc("", h.CreateTask).Methods("POST")
	protected.HandleFunc("/{id}", h.UpdateTask).Methods("PUT")
	protected.HandleFunc("/{id}", h.DeleteTask).Methods("DELETE")

	return router
}
