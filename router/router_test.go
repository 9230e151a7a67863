package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"casedesk/config"
	intakeModel "casedesk/internal/intake/model"
	intakeService "casedesk/internal/intake/service"
	"casedesk/internal/workspace/model"
	"casedesk/internal/workspace/repository"
	workspaceService "casedesk/internal/workspace/service"
	"casedesk/internal/workspace/store"
	"casedesk/socket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := store.New(repository.DefaultSeed()...)
	hub := socket.NewHub(st.List)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	workspaces := workspaceService.NewWorkspaceService(st, hub)
	intake := intakeService.NewIntakeService(workspaces, nil)

	srv := httptest.NewServer(Setup(config.Default(), workspaces, intake, hub))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestCreateWorkspaceThroughIntake(t *testing.T) {
	srv := newTestServer(t)

	var draft intakeModel.Draft
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/api/intake/start", nil, &draft))
	assert.Equal(t, intakeModel.StepIntake, draft.Step)
	assert.Equal(t, "admin", draft.Organizer)

	q := "?draftId=" + draft.ID
	require.Equal(t, http.StatusOK, do(t, http.MethodPost, srv.URL+"/api/intake/summarise"+q,
		intakeModel.SummariseRequest{Description: "Disputed patent licence", Files: []string{"licence.pdf"}}, &draft))
	assert.Equal(t, intakeModel.StepDetail, draft.Step)

	form := draft.Form
	form.Name = "Acme Patent Dispute"
	form.Client = "Acme Corp"
	form.Status = model.StatusCompleted
	require.Equal(t, http.StatusOK, do(t, http.MethodPut, srv.URL+"/api/intake/details"+q, form, &draft))

	var saved intakeModel.SaveResponse
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/api/intake/save"+q, nil, &saved))
	assert.Equal(t, int64(2), saved.Workspace.ID)
	assert.Equal(t, "By: admin", saved.Workspace.Organizer)
	assert.Equal(t, intakeModel.StepIntake, saved.Draft.Step)

	var list model.ListResponse
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, srv.URL+"/api/workspaces", nil, &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Acme Patent Dispute", list.Items[0].Name, "newest first")

	require.Equal(t, http.StatusOK, do(t, http.MethodDelete, srv.URL+"/api/intake/close"+q, nil, nil))
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, srv.URL+"/api/intake"+q, nil, nil))
}

func TestIntakeErrorsMapToStatus(t *testing.T) {
	srv := newTestServer(t)

	var draft intakeModel.Draft
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/api/intake/start", nil, &draft))
	q := "?draftId=" + draft.ID

	assert.Equal(t, http.StatusConflict, do(t, http.MethodPost, srv.URL+"/api/intake/save"+q, nil, nil))
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, srv.URL+"/api/intake/save", nil, nil))
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPost, srv.URL+"/api/intake/back?draftId=nope", nil, nil))

	require.Equal(t, http.StatusOK, do(t, http.MethodPost, srv.URL+"/api/intake/summarise"+q, intakeModel.SummariseRequest{}, &draft))
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, srv.URL+"/api/intake/save"+q, nil, nil), "name is required")
}

func TestMetricsReflectStore(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Statuses map[string]int `json:"statuses"`
	}
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, srv.URL+"/api/metrics", nil, &resp))
	assert.Equal(t, 1, resp.Statuses[model.StatusInProgress])
}
