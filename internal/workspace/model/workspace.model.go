package model

// Workspace statuses shown in the dashboard status filter.
const (
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusPending    = "Pending"

	// DefaultStatus is used when a new workspace is saved without one.
	DefaultStatus = StatusInProgress

	// StatusAll disables status filtering.
	StatusAll = "all"
)

// DateLayout is the display format of CreatedAt.
const DateLayout = "January 2, 2006"

// Case types offered by the detail form.
const (
	CaseTypeCriminal     = "criminal"
	CaseTypeCivil        = "civil"
	CaseTypeCorporate    = "corporate"
	CaseTypeIntellectual = "intellectual"
	CaseTypeEmployment   = "employment"
)

var caseTypeLabels = map[string]string{
	CaseTypeCriminal:     "Criminal Law",
	CaseTypeCivil:        "Civil Litigation",
	CaseTypeCorporate:    "Corporate Law",
	CaseTypeIntellectual: "Intellectual Property",
	CaseTypeEmployment:   "Employment Law",
}

// CaseTypeLabel returns the display label and whether the case type is known.
func CaseTypeLabel(caseType string) (string, bool) {
	label, ok := caseTypeLabels[caseType]
	return label, ok
}

// ValidStatus reports whether s is one of the fixed workspace statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusPending:
		return true
	}
	return false
}

// Workspace is one legal case on the dashboard.
type Workspace struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Client      string       `json:"client"`
	Organizer   string       `json:"organizer"`
	CaseInfo    string       `json:"caseInfo"`
	LevelOfCare string       `json:"levelOfCare"`
	Status      string       `json:"status"`
	CreatedAt   string       `json:"createdAt"`
	Details     *CaseDetails `json:"details,omitempty"`
}

// CaseDetails are the structured fields captured by the detail step.
type CaseDetails struct {
	CaseType      string `json:"caseType"`
	Companies     string `json:"companies"`
	Summary       string `json:"summary"`
	Accused       string `json:"accused"`
	Victims       string `json:"victims"`
	Allegations   string `json:"allegations"`
	Facts         string `json:"facts"`
	IncidentDate  string `json:"incidentDate"`
	RepresentedBy string `json:"representedBy"`
}

// ListResponse is returned by the workspace listing endpoint.
type ListResponse struct {
	Items      []Workspace `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	Pages      int         `json:"pages"`
	Empty      bool        `json:"empty"`
	EmptyState *EmptyState `json:"emptyState,omitempty"`
}

// EmptyState is what the dashboard renders when a query matches nothing.
type EmptyState struct {
	Title  string `json:"title"`
	Hint   string `json:"hint"`
	Action string `json:"action"`
}

// NoWorkspaces is the empty state for a listing with zero matches.
var NoWorkspaces = EmptyState{
	Title:  "No workspaces found",
	Hint:   "Try adjusting your search or filters",
	Action: "Create First Workspace",
}
