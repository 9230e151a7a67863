package metrics

import (
	"encoding/json"
	"net/http"

	"casedesk/pkg/logger"
)

// Card is one tile in the dashboard's metric strip.
type Card struct {
	Title  string `json:"title"`
	Value  int    `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"` // up, flat
}

// StatusCounter reports how many workspaces sit in each status.
type StatusCounter interface {
	StatusCounts() map[string]int
}

type Response struct {
	Cards    []Card         `json:"cards"`
	Statuses map[string]int `json:"statuses"`
}

// DocumentCards are the document and witness figures. They are not derived
// from workspaces; no document pipeline feeds them yet.
func DocumentCards() []Card {
	return []Card{
		{Title: "New Documents", Value: 4, Change: "+2.5% from last month", Trend: "up"},
		{Title: "Total Legal Documents", Value: 51, Change: "+5.2% from last month", Trend: "up"},
		{Title: "Witnesses Added", Value: 4, Change: "No change", Trend: "flat"},
		{Title: "Witnesses Reviewed", Value: 18, Change: "+12% from last month", Trend: "up"},
		{Title: "Witnesses Processed", Value: 8, Change: "+8% from last month", Trend: "up"},
		{Title: "Witnesses Transcribed", Value: 9, Change: "+15% from last month", Trend: "up"},
	}
}

type Handler struct {
	Counter StatusCounter
}

func NewHandler(counter StatusCounter) *Handler {
	return &Handler{Counter: counter}
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := Response{
		Cards:    DocumentCards(),
		Statuses: h.Counter.StatusCounts(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Sugar.Errorf("Failed to encode metrics: %v", err)
	}
}
