package importnames

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nmaclean/liftbase/internal/exercise"
	"github.com/nmaclean/liftbase/internal/importer"
	"github.com/nmaclean/liftbase/internal/matcher"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	importSvc *importer.Service
	engine    *matcher.Engine
}

func NewHandler(importSvc *importer.Service, engine *matcher.Engine) *Handler {
	return &Handler{
		importSvc: importSvc,
		engine:    engine,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importNames)
}

type importResponse struct {
	Total     int                              `json:"total"`
	Matched   int                              `json:"matched"`
	Unmatched int                              `json:"unmatched"`
	Results   map[string]*exercise.MatchResult `json:"results"`
}

// importNames accepts a multipart upload of a training-program name list,
// resolves every name against the catalog and reports the per-name
// outcomes. Nothing is persisted: the caller decides what to do with
// unmatched names (typically offering a create-missing flow).
func (h *Handler) importNames(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatNameList
	}

	locale := r.FormValue("locale")

	var threshold float64
	if raw := r.FormValue("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid threshold: "+raw, http.StatusBadRequest)
			return
		}

		threshold = parsed
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	names, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.engine.MatchAll(r.Context(), names, locale, threshold)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importResponse{
		Total:   len(results),
		Results: results,
	}

	for _, res := range results {
		if res.Found {
			resp.Matched++
		} else {
			resp.Unmatched++
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
