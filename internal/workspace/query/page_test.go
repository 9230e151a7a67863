package query

import (
	"math"
	"testing"

	"casedesk/internal/workspace/model"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) []model.Workspace {
	out := make([]model.Workspace, n)
	for i := range out {
		out[i] = model.Workspace{ID: int64(i + 1)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		pageSize  int
		wantIDs   []int64
		wantPages int
		wantSize  int
	}{
		{name: "first page", total: 23, page: 1, pageSize: 10, wantIDs: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, wantPages: 3, wantSize: 10},
		{name: "last partial page", total: 23, page: 3, pageSize: 10, wantIDs: []int64{21, 22, 23}, wantPages: 3, wantSize: 10},
		{name: "past the end", total: 23, page: 4, pageSize: 10, wantIDs: []int64{}, wantPages: 3, wantSize: 10},
		{name: "unsupported size", total: 12, page: 2, pageSize: 7, wantIDs: []int64{11, 12}, wantPages: 2, wantSize: 10},
		{name: "page below one", total: 3, page: 0, pageSize: 25, wantIDs: []int64{1, 2, 3}, wantPages: 1, wantSize: 25},
		{name: "page number too large to multiply", total: 3, page: math.MaxInt, pageSize: 10, wantIDs: []int64{}, wantPages: 1, wantSize: 10},
		{name: "empty", total: 0, page: 1, pageSize: 50, wantIDs: []int64{}, wantPages: 0, wantSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(numbered(tt.total), tt.page, tt.pageSize)
			assert.Equal(t, tt.wantIDs, ids(p.Items))
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}
