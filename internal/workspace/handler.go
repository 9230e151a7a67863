package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"casedesk/internal/workspace/query"
	"casedesk/internal/workspace/service"
	"casedesk/internal/workspace/store"
	"casedesk/pkg/logger"
)

type WorkspaceHandler struct {
	Service *service.WorkspaceService
}

func NewWorkspaceHandler(service *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{Service: service}
}

// GetWorkspaces serves the filtered, sorted and paginated listing.
func (h *WorkspaceHandler) GetWorkspaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	cfg := query.Config{
		Search: q.Get("search"),
		Status: q.Get("status"),
		SortBy: q.Get("sortBy"),
		Order:  q.Get("order"),
	}

	page, err := intParam(q, "page", 1)
	if err != nil {
		http.Error(w, "Invalid page parameter", http.StatusBadRequest)
		return
	}
	pageSize, err := intParam(q, "pageSize", query.DefaultPageSize)
	if err != nil {
		http.Error(w, "Invalid pageSize parameter", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.Service.ListPage(cfg, page, pageSize))
}

// GetWorkspace serves a single workspace for the detail view.
func (h *WorkspaceHandler) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "Missing or invalid id parameter", http.StatusBadRequest)
		return
	}

	ws, err := h.Service.Get(id)
	if errors.Is(err, store.ErrWorkspaceNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Sugar.Errorf("Handler: Failed to get workspace %d: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, ws)
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Sugar.Errorf("Failed to encode response: %v", err)
	}
}
