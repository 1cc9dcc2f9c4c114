package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/3-lines-studio/accordion"
)

type panelResponse struct {
	Index  int    `json:"index"`
	State  string `json:"state"`
	Class  string `json:"class"`
	Height string `json:"height,omitempty"`
}

type stateResponse struct {
	Open           int             `json:"open"`
	Panels         []panelResponse `json:"panels"`
	CleanupAfterMs int64           `json:"cleanupAfterMs"`
}

func newStateResponse(snap accordion.Snapshot) stateResponse {
	resp := stateResponse{
		Open:           snap.Open,
		Panels:         make([]panelResponse, len(snap.Panels)),
		CleanupAfterMs: snap.Transition.Milliseconds(),
	}
	for i, v := range snap.Panels {
		resp.Panels[i] = panelResponse{
			Index:  v.Index,
			State:  v.State.String(),
			Class:  v.Class,
			Height: v.Height,
		}
	}
	return resp
}

type ToggleHandler struct {
	widget Widget
	logger *slog.Logger
}

func NewToggleHandler(widget Widget, logger *slog.Logger) http.Handler {
	return &ToggleHandler{widget: widget, logger: logger}
}

func (h *ToggleHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	raw := req.URL.Query().Get("panel")
	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "panel must be an integer, got "+strconv.Quote(raw), h.logger)
		return
	}

	snap, err := h.widget.ToggleSnapshot(index)
	if err != nil {
		if errors.Is(err, accordion.ErrNoSuchPanel) {
			writeError(w, http.StatusNotFound, err.Error(), h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newStateResponse(snap), h.logger)
}
