package match

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nmaclean/liftbase/internal/exercise"
	"github.com/nmaclean/liftbase/internal/matcher"
)

type Handler struct {
	engine *matcher.Engine
}

func NewHandler(engine *matcher.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.match)
	r.Post("/batch", h.matchBatch)
	r.Post("/missing", h.createMissing)
	r.Post("/invalidate", h.invalidate)
}

type matchRequest struct {
	Name      string  `json:"name"`
	Locale    string  `json:"locale"`
	Threshold float64 `json:"threshold"`
}

func (h *Handler) match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	result, err := h.engine.Match(r.Context(), req.Name, req.Locale, req.Threshold)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
}

type matchBatchRequest struct {
	Names     []string `json:"names"`
	Locale    string   `json:"locale"`
	Threshold float64  `json:"threshold"`
}

type matchBatchResponse struct {
	Results map[string]*exercise.MatchResult `json:"results"`
}

func (h *Handler) matchBatch(w http.ResponseWriter, r *http.Request) {
	var req matchBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Names) == 0 {
		http.Error(w, "names are required", http.StatusBadRequest)
		return
	}

	results, err := h.engine.MatchAll(r.Context(), req.Names, req.Locale, req.Threshold)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, matchBatchResponse{Results: results})
}

type createMissingRequest struct {
	Name        string    `json:"name"`
	Locale      string    `json:"locale"`
	RequesterID uuid.UUID `json:"requester_id"`
}

type createMissingResponse struct {
	ID uuid.UUID `json:"id"`
}

func (h *Handler) createMissing(w http.ResponseWriter, r *http.Request) {
	var req createMissingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	id, err := h.engine.CreateMissing(r.Context(), req.Name, req.Locale, req.RequesterID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(createMissingResponse{ID: id}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) invalidate(w http.ResponseWriter, _ *http.Request) {
	h.engine.InvalidateCaches()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
