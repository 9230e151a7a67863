package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"casedesk/internal/intake/model"
	wsmodel "casedesk/internal/workspace/model"
	"casedesk/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrWrongStep       = errors.New("operation not allowed in current step")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidCaseType = errors.New("invalid case type")
	ErrSaveInProgress  = errors.New("draft is being saved")
)

// WorkspaceCreator appends a finished workspace to the session store.
type WorkspaceCreator interface {
	Create(w wsmodel.Workspace) (wsmodel.Workspace, error)
}

// IntakeService runs the two-step capture flow: intake (describe and upload)
// then detail (structured fields), ending in a new workspace.
type IntakeService struct {
	Workspaces WorkspaceCreator
	Summariser Summariser
	Now        func() time.Time

	mu     sync.Mutex
	drafts map[string]*model.Draft
	saving map[string]bool
}

func NewIntakeService(workspaces WorkspaceCreator, summariser Summariser) *IntakeService {
	if summariser == nil {
		summariser = StubSummariser{}
	}
	return &IntakeService{
		Workspaces: workspaces,
		Summariser: summariser,
		Now:        time.Now,
		drafts:     make(map[string]*model.Draft),
		saving:     make(map[string]bool),
	}
}

// Start opens a new draft in the intake step.
func (s *IntakeService) Start(organizer string) model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &model.Draft{
		ID:        uuid.NewString(),
		Step:      model.StepIntake,
		Organizer: organizer,
		Files:     []string{},
		UpdatedAt: s.Now(),
	}
	s.drafts[d.ID] = d
	return snapshot(d)
}

func (s *IntakeService) Get(id string) (model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return model.Draft{}, ErrDraftNotFound
	}
	return snapshot(d), nil
}

// Summarise records the intake text and moves the draft to the detail step.
// Fields the user already filled in are kept, and a request without a file
// list keeps the files listed on an earlier pass.
func (s *IntakeService) Summarise(id string, req model.SummariseRequest) (model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draftInStep(id, model.StepIntake)
	if err != nil {
		return model.Draft{}, err
	}

	d.Description = req.Description
	if req.Files != nil {
		d.Files = cleanFiles(req.Files)
	}
	fillBlank(&d.Form, s.Summariser.Summarise(req.Description, d.Files))
	d.Step = model.StepDetail
	d.UpdatedAt = s.Now()
	return snapshot(d), nil
}

// UpdateDetails replaces the detail form.
func (s *IntakeService) UpdateDetails(id string, form model.DetailForm) (model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draftInStep(id, model.StepDetail)
	if err != nil {
		return model.Draft{}, err
	}
	d.Form = form
	d.UpdatedAt = s.Now()
	return snapshot(d), nil
}

// Back returns to the intake step without dropping anything typed so far.
func (s *IntakeService) Back(id string) (model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draftInStep(id, model.StepDetail)
	if err != nil {
		return model.Draft{}, err
	}
	d.Step = model.StepIntake
	d.UpdatedAt = s.Now()
	return snapshot(d), nil
}

// Save validates the detail form, creates the workspace and resets the
// draft to an empty intake step. The lock is not held while the workspace is
// created, since that notifies every connected dashboard.
func (s *IntakeService) Save(id string) (model.SaveResponse, error) {
	s.mu.Lock()
	d, err := s.draftInStep(id, model.StepDetail)
	if err == nil {
		err = validate(d.Form)
	}
	if err != nil {
		s.mu.Unlock()
		return model.SaveResponse{}, err
	}
	pending := buildWorkspace(d)
	s.saving[id] = true
	s.mu.Unlock()

	w, err := s.Workspaces.Create(pending)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, id)
	if err != nil {
		return model.SaveResponse{}, fmt.Errorf("create workspace: %w", err)
	}

	resp := model.SaveResponse{Workspace: w}
	// The modal may have been closed while the workspace was created.
	if d, ok := s.drafts[id]; ok {
		*d = model.Draft{
			ID:        d.ID,
			Step:      model.StepIntake,
			Organizer: d.Organizer,
			Files:     []string{},
			UpdatedAt: s.Now(),
		}
		resp.Draft = snapshot(d)
	}
	return resp, nil
}

// Close discards the draft, as when the modal is dismissed.
func (s *IntakeService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

// Expire drops drafts untouched for longer than maxAge and returns how many went.
func (s *IntakeService) Expire(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.Now().Add(-maxAge)
	n := 0
	for id, d := range s.drafts {
		if d.UpdatedAt.Before(cutoff) {
			delete(s.drafts, id)
			n++
		}
	}
	return n
}

// ExpireWorker periodically drops abandoned drafts until ctx is done.
func (s *IntakeService) ExpireWorker(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Expire(maxAge); n > 0 {
				logger.Sugar.Infof("Expired %d abandoned drafts", n)
			}
		}
	}
}

func (s *IntakeService) draftInStep(id string, step model.Step) (*model.Draft, error) {
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if s.saving[id] {
		return nil, ErrSaveInProgress
	}
	if d.Step != step {
		return nil, fmt.Errorf("%w: draft is in %s, want %s", ErrWrongStep, d.Step, step)
	}
	return d, nil
}

func validate(form model.DetailForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if form.CaseType == "" {
		return fmt.Errorf("%w: caseType", ErrMissingField)
	}
	if _, ok := wsmodel.CaseTypeLabel(form.CaseType); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCaseType, form.CaseType)
	}
	return nil
}

func buildWorkspace(d *model.Draft) wsmodel.Workspace {
	form := d.Form
	client := strings.TrimSpace(form.Client)
	if client == "" {
		client = strings.TrimSpace(form.RepresentedBy)
	}
	details := form.CaseDetails

	return wsmodel.Workspace{
		Name:        strings.TrimSpace(form.Name),
		Client:      client,
		Organizer:   "By: " + d.Organizer,
		CaseInfo:    fmt.Sprintf("%d accused | %d victims", countParties(form.Accused), countParties(form.Victims)),
		LevelOfCare: fmt.Sprintf("%d documents processing", len(d.Files)),
		Status:      form.Status,
		Details:     &details,
	}
}

// countParties counts comma-separated names; "None" style placeholders count as zero.
func countParties(s string) int {
	n := 0
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "", "none", "none reported", "n/a":
			continue
		}
		n++
	}
	return n
}

func cleanFiles(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func snapshot(d *model.Draft) model.Draft {
	out := *d
	out.Files = append([]string(nil), d.Files...)
	if out.Files == nil {
		out.Files = []string{}
	}
	return out
}
