package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/emmanuel20-pro/Actividad-3/auth"
	"github.com/emmanuel20-pro/Actividad-3/middleware"
	"github.com/emmanuel20-pro/Actividad-3/models"
	"github.com/emmanuel20-pro/Actividad-3/tasks"
	"github.com/emmanuel20-pro/Actividad-3/users"
	"github.com/gorilla/mux"
)

// Handlers holds the services shared by all HTTP handlers.
type Handlers struct {
	Users  *users.Service
	Tasks  *tasks.Repository
	Tokens *auth.Service
	Logger *slog.Logger
}

// NewHandlers is a constructor for the Handlers struct.
func NewHandlers(u *users.Service, t *tasks.Repository, tok *auth.Service, logger *slog.Logger) *Handlers {
	return &Handlers{Users: u, Tasks: t, Tokens: tok, Logger: logger}
}

// respondWithJSON is a helper function to format and send JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithMessage(w http.ResponseWriter, code int, mensaje string) {
	respondWithJSON(w, code, map[string]string{"mensaje": mensaje})
}

// Register handles a new user registration.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	defer r.Body.Close()

	if err := h.Users.Register(req.Usuario, req.Password); err != nil {
		if errors.Is(err, users.ErrUserExists) {
			respondWithMessage(w, http.StatusBadRequest, "Usuario ya existe")
			return
		}
		h.Logger.Error("register failed", "error", err)
		respondWithMessage(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	respondWithMessage(w, http.StatusOK, "Usuario registrado")
}

// Login verifies credentials and returns a signed token. Unknown users
// and wrong passwords produce the same response.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	defer r.Body.Close()

	if err := h.Users.Verify(req.Usuario, req.Password); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Credenciales inválidas")
		return
	}

	token, err := h.Tokens.Issue(req.Usuario)
	if err != nil {
		h.Logger.Error("token signing failed", "error", err)
		respondWithMessage(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ListTasks returns the full task collection.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Tasks.List())
}

// CreateTask appends a new task and returns it with its assigned id.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	defer r.Body.Close()

	task, err := h.Tasks.Create(req.Title, req.Description)
	if err != nil {
		h.Logger.Error("create task failed", "error", err)
		respondWithMessage(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if usuario, ok := r.Context().Value(middleware.UserKey).(string); ok {
		h.Logger.Info("task created", "id", task.ID, "usuario", usuario)
	}
	respondWithJSON(w, http.StatusOK, task)
}

// UpdateTask replaces title and description of an existing task.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		// A non-numeric id matches no task.
		respondWithMessage(w, http.StatusNotFound, "Tarea no encontrada")
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	defer r.Body.Close()

	task, err := h.Tasks.Update(id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			respondWithMessage(w, http.StatusNotFound, "Tarea no encontrada")
			return
		}
		h.Logger.Error("update task failed", "error", err)
		respondWithMessage(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	respondWithJSON(w, http.StatusOK, task)
}

// DeleteTask removes a task by id. Removal is filter-based, so deleting
// an id that is absent still succeeds.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		// A non-numeric id matches nothing; deletion stays idempotent.
		respondWithMessage(w, http.StatusOK, "Tarea eliminada")
		return
	}

	if err := h.Tasks.Delete(id); err != nil {
		h.Logger.Error("delete task failed", "error", err)
		respondWithMessage(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	respondWithMessage(w, http.StatusOK, "Tarea eliminada")
}
