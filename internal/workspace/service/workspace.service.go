package service

import (
	"errors"
	"strings"
	"time"

	"casedesk/internal/workspace/model"
	"casedesk/internal/workspace/query"
	"casedesk/internal/workspace/store"
	"casedesk/pkg/logger"
)

var ErrNameRequired = errors.New("workspace name is required")

// Notifier is told about every workspace appended to the store.
type Notifier interface {
	WorkspaceCreated(w model.Workspace)
}

type WorkspaceService struct {
	Store    *store.Store
	Notifier Notifier
	Now      func() time.Time
}

func NewWorkspaceService(st *store.Store, notifier Notifier) *WorkspaceService {
	return &WorkspaceService{Store: st, Notifier: notifier, Now: time.Now}
}

// List runs the query engine over the current store contents.
func (s *WorkspaceService) List(cfg query.Config) []model.Workspace {
	return query.Apply(s.Store.List(), cfg)
}

// ListPage queries and paginates in one step, filling the empty state
// when nothing matches.
func (s *WorkspaceService) ListPage(cfg query.Config, page, pageSize int) model.ListResponse {
	p := query.Paginate(s.List(cfg), page, pageSize)
	resp := model.ListResponse{
		Items:    p.Items,
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
		Pages:    p.Pages,
	}
	if p.Total == 0 {
		empty := model.NoWorkspaces
		resp.Empty = true
		resp.EmptyState = &empty
	}
	return resp
}

func (s *WorkspaceService) Get(id int64) (model.Workspace, error) {
	return s.Store.Get(id)
}

// Create assigns an ID and creation date, defaults the status and appends
// the workspace. Everything else is taken as given.
func (s *WorkspaceService) Create(w model.Workspace) (model.Workspace, error) {
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return model.Workspace{}, ErrNameRequired
	}
	if !model.ValidStatus(w.Status) {
		w.Status = model.DefaultStatus
	}
	w.ID = s.Store.NextID()
	w.CreatedAt = s.Now().Format(model.DateLayout)

	s.Store.Append(w)
	logger.Sugar.Infof("Workspace %d created: %q", w.ID, w.Name)

	if s.Notifier != nil {
		s.Notifier.WorkspaceCreated(w)
	}
	return w, nil
}

// StatusCounts returns how many workspaces are in each status.
func (s *WorkspaceService) StatusCounts() map[string]int {
	counts := map[string]int{
		model.StatusInProgress: 0,
		model.StatusCompleted:  0,
		model.StatusPending:    0,
	}
	for _, w := range s.Store.List() {
		counts[w.Status]++
	}
	return counts
}
