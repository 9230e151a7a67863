package query

import (
	"strings"
	"testing"

	"casedesk/internal/workspace/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func johnson() model.Workspace {
	return model.Workspace{
		ID:          1,
		Name:        "Johnson & Partners Merger",
		Client:      "Law Firm: Big Easy",
		Organizer:   "By: michael.johnson",
		CaseInfo:    "45 witnesses | 12 were ..",
		LevelOfCare: "18 documents processing",
		Status:      model.StatusInProgress,
		CreatedAt:   "May 3, 2024",
	}
}

func fixtures() []model.Workspace {
	return []model.Workspace{
		johnson(),
		{ID: 2, Name: "Acme Patent Dispute", Client: "Acme Corp", Organizer: "By: sara.lee", Status: model.StatusCompleted, CreatedAt: "June 1, 2024"},
		{ID: 3, Name: "Harbor Lease Review", Client: "Harbor LLC", Organizer: "By: tom.ng", Status: model.StatusPending, CreatedAt: "January 15, 2024"},
		{ID: 4, Name: "Delta Employment Claim", Client: "Delta Johnson Inc", Organizer: "By: amy.ross", Status: model.StatusInProgress, CreatedAt: "March 9, 2024"},
	}
}

func ids(ws []model.Workspace) []int64 {
	out := make([]int64, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func TestApplyDefaultsSortByCreatedAtDesc(t *testing.T) {
	got := Apply(fixtures(), Config{})
	assert.Equal(t, []int64{2, 1, 4, 3}, ids(got))
}

func TestApplySearchIsSoundAndComplete(t *testing.T) {
	records := fixtures()
	got := Apply(records, Config{Search: "JOHNSON"})

	matches := func(w model.Workspace) bool {
		for _, f := range []string{w.Name, w.Client, w.Organizer} {
			if strings.Contains(strings.ToLower(f), "johnson") {
				return true
			}
		}
		return false
	}

	returned := make(map[int64]bool)
	for _, w := range got {
		assert.True(t, matches(w), "record %d should not match", w.ID)
		returned[w.ID] = true
	}
	for _, w := range records {
		if !returned[w.ID] {
			assert.False(t, matches(w), "record %d was dropped", w.ID)
		}
	}
	assert.ElementsMatch(t, []int64{1, 4}, ids(got))
}

func TestApplyStatusFilter(t *testing.T) {
	got := Apply(fixtures(), Config{Status: model.StatusInProgress})
	require.NotEmpty(t, got)
	for _, w := range got {
		assert.Equal(t, model.StatusInProgress, w.Status)
	}
}

func TestApplyIsIdempotentAndPure(t *testing.T) {
	records := fixtures()
	before := ids(records)
	cfg := Config{Search: "a", SortBy: SortByName, Order: OrderAsc}

	first := Apply(records, cfg)
	second := Apply(records, cfg)

	assert.Equal(t, first, second)
	assert.Equal(t, before, ids(records))
}

func TestApplySortAscendingByName(t *testing.T) {
	got := Apply(fixtures(), Config{SortBy: SortByName, Order: OrderAsc})
	assert.Equal(t, []int64{2, 4, 3, 1}, ids(got))
}

func TestApplySortByIDIsNumeric(t *testing.T) {
	records := []model.Workspace{{ID: 10}, {ID: 9}, {ID: 100}}
	got := Apply(records, Config{SortBy: SortByID, Order: OrderAsc})
	assert.Equal(t, []int64{9, 10, 100}, ids(got))
}

func TestApplyUnknownSortKeyFallsBack(t *testing.T) {
	got := Apply(fixtures(), Config{SortBy: "bogus"})
	assert.Equal(t, Apply(fixtures(), Config{}), got)
}

func TestApplyEqualKeysKeepInsertionOrder(t *testing.T) {
	records := []model.Workspace{
		{ID: 1, Status: model.StatusPending},
		{ID: 2, Status: model.StatusPending},
		{ID: 3, Status: model.StatusPending},
	}
	assert.Equal(t, []int64{1, 2, 3}, ids(Apply(records, Config{SortBy: SortByStatus, Order: OrderAsc})))
	assert.Equal(t, []int64{1, 2, 3}, ids(Apply(records, Config{SortBy: SortByStatus})))
}

func TestApplyUnparseableDatesSortFirstAscending(t *testing.T) {
	records := []model.Workspace{
		{ID: 1, CreatedAt: "May 3, 2024"},
		{ID: 2, CreatedAt: "someday"},
		{ID: 3, CreatedAt: "2023-12-31"},
	}
	got := Apply(records, Config{Order: OrderAsc})
	assert.Equal(t, []int64{2, 3, 1}, ids(got))
}

func TestScenarioJohnson(t *testing.T) {
	records := []model.Workspace{johnson()}

	got := Apply(records, Config{Search: "johnson"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	assert.Empty(t, Apply(records, Config{Status: model.StatusCompleted}))
}

func TestScenarioNewerAppendSortsFirst(t *testing.T) {
	records := []model.Workspace{
		johnson(),
		{ID: 2, Name: "Second", Status: model.StatusCompleted, CreatedAt: "June 1, 2024"},
	}
	got := Apply(records, Config{})
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestNormalize(t *testing.T) {
	cfg := Config{Order: "sideways"}.Normalize()
	assert.Equal(t, Config{Status: model.StatusAll, SortBy: SortByCreatedAt, Order: OrderDesc}, cfg)
}
