package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"casedesk/internal/intake/model"
	"casedesk/internal/intake/service"
	"casedesk/middleware"
	"casedesk/pkg/logger"
)

type IntakeHandler struct {
	Service *service.IntakeService
}

func NewIntakeHandler(service *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{Service: service}
}

func (h *IntakeHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	draft := h.Service.Start(middleware.Identity(r.Context()))
	writeJSON(w, http.StatusCreated, draft)
}

func (h *IntakeHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draftID, ok := draftParam(w, r)
	if !ok {
		return
	}

	draft, err := h.Service.Get(draftID)
	if err != nil {
		writeError(w, "get draft", err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *IntakeHandler) Summarise(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draftID, ok := draftParam(w, r)
	if !ok {
		return
	}

	var req model.SummariseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.Service.Summarise(draftID, req)
	if err != nil {
		writeError(w, "summarise", err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *IntakeHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draftID, ok := draftParam(w, r)
	if !ok {
		return
	}

	var form model.DetailForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.Service.UpdateDetails(draftID, form)
	if err != nil {
		writeError(w, "update details", err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *IntakeHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draftID, ok := draftParam(w, r)
	if !ok {
		return
	}

	draft, err := h.Service.Back(draftID)
	if err != nil {
		writeError(w, "go back", err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *IntakeHandler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draftID, ok := draftParam(w, r)
	if !ok {
		return
	}

	resp, err := h.Service.Save(draftID)
	if err != nil {
		writeError(w, "save details", err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *IntakeHandler) CloseDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	draftID, ok := draftParam(w, r)
	if !ok {
		return
	}

	if err := h.Service.Close(draftID); err != nil {
		writeError(w, "close draft", err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Draft closed"))
}

func draftParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	draftID := r.URL.Query().Get("draftId")
	if draftID == "" {
		http.Error(w, "Missing draftId parameter", http.StatusBadRequest)
		return "", false
	}
	return draftID, true
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrWrongStep), errors.Is(err, service.ErrSaveInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrMissingField), errors.Is(err, service.ErrInvalidCaseType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Sugar.Errorf("Handler: Failed to %s: %v", op, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Sugar.Errorf("Failed to encode response: %v", err)
	}
}
