package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/meridian/internal/repository"
	"github.com/UnknownOlympus/meridian/pkg/geo"
)

type SegmentHandler struct {
	log  *slog.Logger
	repo repository.Interface
}

type createSegmentRequest struct {
	From *geo.Point `json:"from"`
	To   *geo.Point `json:"to"`
}

// Create handles POST /v1/segments. The segment is stored and its midpoint is filled in later by the worker.
func (h *SegmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSegmentRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.From == nil || req.To == nil {
		writeError(h.log, w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	id, err := h.repo.InsertSegment(r.Context(), *req.From, *req.To)
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to store segment", "error", err)
		writeError(h.log, w, r, http.StatusInternalServerError, "failed to store segment")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/segments/%d", id))
	writeJSON(h.log, w, r, http.StatusAccepted, map[string]int{"id": id})
}

// Get handles GET /v1/segments/{id}.
func (h *SegmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(h.log, w, r, http.StatusBadRequest, "invalid segment id")
		return
	}

	rec, err := h.repo.GetSegment(r.Context(), id)
	if errors.Is(err, repository.ErrSegmentNotFound) {
		writeError(h.log, w, r, http.StatusNotFound, "segment not found")
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to get segment", "id", id, "error", err)
		writeError(h.log, w, r, http.StatusInternalServerError, "failed to get segment")
		return
	}

	writeJSON(h.log, w, r, http.StatusOK, rec)
}
