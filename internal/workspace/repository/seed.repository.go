package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"casedesk/internal/workspace/model"
	"casedesk/pkg/logger"
)

// SeedRepository reads the existing case catalogue. It never writes:
// workspaces created during a session stay in memory.
type SeedRepository struct {
	DB *sql.DB
}

func NewSeedRepository(db *sql.DB) *SeedRepository {
	return &SeedRepository{DB: db}
}

func (r *SeedRepository) LoadAll(ctx context.Context) ([]model.Workspace, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, client, organizer, case_info, level_of_care, status, created_at
		FROM workspaces
		ORDER BY id ASC`)
	if err != nil {
		logger.Sugar.Errorf("Failed to query seed workspaces: %v", err)
		return nil, fmt.Errorf("query seed workspaces: %w", err)
	}
	defer rows.Close()

	var out []model.Workspace
	for rows.Next() {
		var (
			w         model.Workspace
			status    sql.NullString
			createdAt time.Time
		)
		if err := rows.Scan(&w.ID, &w.Name, &w.Client, &w.Organizer, &w.CaseInfo, &w.LevelOfCare, &status, &createdAt); err != nil {
			logger.Sugar.Warnf("Skipping unreadable seed workspace row: %v", err)
			continue
		}
		w.Status = status.String
		if !model.ValidStatus(w.Status) {
			w.Status = model.DefaultStatus
		}
		w.CreatedAt = createdAt.Format(model.DateLayout)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read seed workspaces: %w", err)
	}
	return out, nil
}

// DefaultSeed is the catalogue used when no seed database is configured.
func DefaultSeed() []model.Workspace {
	return []model.Workspace{
		{
			ID:          1,
			Name:        "Johnson & Partners Merger",
			Client:      "Law Firm: Big Easy",
			Organizer:   "By: michael.johnson",
			CaseInfo:    "45 witnesses | 12 were ..",
			LevelOfCare: "18 documents processing",
			Status:      model.StatusInProgress,
			CreatedAt:   "May 3, 2024",
		},
	}
}
