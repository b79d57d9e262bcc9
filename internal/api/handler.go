// Package api exposes the todo record service over HTTP. Handlers are
// stateless: they parse and validate input, call the record store, and shape
// JSON responses. All failures funnel through a single error translator.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eleven-am/tick/internal/logger"
	"github.com/eleven-am/tick/internal/todo"
)

// RecordStore is the persistence surface the handlers need. It is satisfied
// by *store.Store; tests inject an in-memory fake.
type RecordStore interface {
	List(ctx context.Context) ([]todo.Record, error)
	Insert(ctx context.Context, text string) (todo.Record, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (todo.Record, error)
	Remove(ctx context.Context, id int64) (int64, error)
}

// Handler holds the HTTP handlers for the todo API.
type Handler struct {
	store RecordStore
	log   logger.Logger
}

// NewHandler creates a Handler backed by the given store.
func NewHandler(store RecordStore) *Handler {
	return &Handler{
		store: store,
		log:   logger.API(),
	}
}

// Router builds the API router. Non-numeric id segments fail the route
// pattern and fall through to mux's 404, matching the wire contract for
// unknown ids.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	s := r.PathPrefix("/api/todos").Subrouter()
	s.HandleFunc("", h.handleList).Methods(http.MethodGet)
	s.HandleFunc("", h.handleCreate).Methods(http.MethodPost)
	s.HandleFunc("/{id:[0-9]+}", h.handleUpdate).Methods(http.MethodPut)
	s.HandleFunc("/{id:[0-9]+}", h.handleDelete).Methods(http.MethodDelete)

	return r
}

type createRequest struct {
	Text any `json:"text"`
}

type updateRequest struct {
	Completed any `json:"completed"`
}

type listResponse struct {
	Todos []todo.Record `json:"todos"`
}

type todoResponse struct {
	Todo todo.Record `json:"todo"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listResponse{Todos: records})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	text, err := todo.NormalizeText(req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.Insert(r.Context(), text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, todoResponse{Todo: record})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req updateRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	completed, err := todo.ParseCompleted(req.Completed)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.SetCompleted(r.Context(), id, completed)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, todoResponse{Todo: record})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	affected, err := h.store.Remove(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if affected == 0 {
		h.writeError(w, r, todo.ErrNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "todo deleted successfully"})
}

// decodeBody parses a JSON request body. A malformed body is a validation
// failure, not a server error.
func decodeBody(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return &todo.ValidationError{Message: "request body must be valid JSON"}
	}
	return nil
}

// pathID extracts the id route variable. The route pattern restricts it to
// digits, so a parse failure can only mean overflow; treat that as unknown.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, todo.ErrNotFound
	}
	return id, nil
}
