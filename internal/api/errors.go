package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eleven-am/tick/internal/todo"
)

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError is the single translation point from internal errors to wire
// responses. Validation failures map to 400, unknown ids to 404, everything
// else to 500. Full detail is logged server-side; the client only ever sees
// the message and status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var verr *todo.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		message = verr.Message
	case errors.Is(err, todo.ErrNotFound):
		status = http.StatusNotFound
		message = "todo not found"
	}

	h.log.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err)

	h.writeJSON(w, status, errorResponse{Error: errorBody{Message: message, Status: status}})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encode response", "error", err)
	}
}
