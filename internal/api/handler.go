// Package api serves a group store over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"groupedit/internal/domain"
	"groupedit/internal/groups"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	store groups.Store
}

// NewHandler creates a new group handler
func NewHandler(store groups.Store) *Handler {
	return &Handler{store: store}
}

// Router returns the full server router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Mount("/group", h.Routes())

	return r
}

// Routes returns the router for group endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)

	return r
}

// List handles GET /group
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Get handles GET /group/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Create handles POST /group
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var fields domain.GroupFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, groups.ErrorBody{Message: "Invalid request body"})
		return
	}

	record, err := h.store.Create(r.Context(), fields)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("Created group %d (%s)", record.ID, record.Name)
	writeJSON(w, http.StatusOK, record)
}

// Update handles PUT /group/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	var fields domain.GroupFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, groups.ErrorBody{Message: "Invalid request body"})
		return
	}

	record, err := h.store.Update(r.Context(), &domain.GroupRecord{ID: id}, fields)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("Updated group %d (%s)", record.ID, record.Name)
	writeJSON(w, http.StatusOK, record)
}

func groupID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, groups.ErrorBody{Message: "Invalid group ID"})
		return 0, false
	}
	return id, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe):
		writeError(w, http.StatusBadRequest, groups.ErrorBody{Type: "validation", Field: fe.Field, Message: fe.Message})
	case errors.Is(err, groups.ErrGroupNotFound):
		writeError(w, http.StatusNotFound, groups.ErrorBody{Message: "Group not found"})
	default:
		log.Printf("Group store error: %v", err)
		writeError(w, http.StatusInternalServerError, groups.ErrorBody{Message: "Internal server error"})
	}
}

func writeError(w http.ResponseWriter, status int, body groups.ErrorBody) {
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
