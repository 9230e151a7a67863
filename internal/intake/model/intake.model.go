package model

import (
	"time"

	wsmodel "casedesk/internal/workspace/model"
)

// Step is where a draft sits in the capture flow.
type Step string

const (
	StepIntake Step = "intake"
	StepDetail Step = "detail"
)

// DetailForm is the structured form shown in the detail step.
type DetailForm struct {
	Name   string `json:"name"`
	Client string `json:"client"`
	Status string `json:"status"`
	wsmodel.CaseDetails
}

// Draft is one open "create workspace" modal.
type Draft struct {
	ID          string     `json:"id"`
	Step        Step       `json:"step"`
	Organizer   string     `json:"organizer"`
	Description string     `json:"description"`
	Files       []string   `json:"files"`
	Form        DetailForm `json:"form"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SummariseRequest is the intake step submission.
// Files holds uploaded file names only; content upload is not handled.
type SummariseRequest struct {
	Description string   `json:"description"`
	Files       []string `json:"files"`
}

type SaveResponse struct {
	Workspace wsmodel.Workspace `json:"workspace"`
	Draft     Draft             `json:"draft"`
}
