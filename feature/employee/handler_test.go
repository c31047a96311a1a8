package employee

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-sync/core/config"
	"hris-sync/core/reconcile"
	"hris-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(src reconcile.Source, dir reconcile.Directory) *fiber.App {
	app := fiber.New()
	svc := newTestService(config.Static(testConfig()), src, dir, nil)
	NewFeatureWithService(svc).Load(app)
	return app
}

func TestHandleFullSync_DryRunByDefault(t *testing.T) {
	dir := janeDirectory()
	app := setupTestApp(janeSource(), dir)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report reconcile.SyncReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Test)
	assert.Len(t, report.Results, 1)
	assert.Zero(t, dir.modifies)
}

func TestHandleFullSync_Apply(t *testing.T) {
	dir := janeDirectory()
	app := setupTestApp(janeSource(), dir)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync?apply=true", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report reconcile.SyncReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.False(t, report.Test)
	assert.Equal(t, 1, dir.modifies)
}

func TestHandleFullSync_ExtractionFailure(t *testing.T) {
	dir := janeDirectory()
	dir.searchErr = errors.New("invalid credentials")
	app := setupTestApp(janeSource(), dir)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync?apply=true", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "invalid credentials")
}

func TestHandleSelectedSync(t *testing.T) {
	dir := janeDirectory()
	app := setupTestApp(janeSource(), dir)

	req := httptest.NewRequest("POST", "/sync/selected", strings.NewReader(`{"employee_ids":["MTI123456"]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report reconcile.SyncReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, reconcile.ActionAttributeUpdate, report.Results[0].Action)
}

func TestHandleSelectedSync_BadRequest(t *testing.T) {
	app := setupTestApp(janeSource(), janeDirectory())

	tests := []struct {
		name string
		body string
	}{
		{"Malformed", `{"employee_ids":`},
		{"Empty", `{"employee_ids":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/sync/selected", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleExport(t *testing.T) {
	dir := janeDirectory()
	app := setupTestApp(janeSource(), dir)

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/export", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "employee_id,full_name,match"))
	assert.True(t, strings.HasPrefix(lines[1], "MTI123456,Jane Smith,exact-key,jsmith"))
	assert.Zero(t, dir.modifies)
}

func TestHandleReports_ArchiveDisabled(t *testing.T) {
	app := setupTestApp(janeSource(), janeDirectory())

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/reports", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/reports/run-1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleGetReport_UnknownRunID(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "audit", "hris-sync/reports/nope.json", minio.GetObjectOptions{}).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404, Message: "The specified key does not exist."})
	client.On("GetObject", mock.Anything, "audit", "hris-sync/reports/run-1.json", minio.GetObjectOptions{}).
		Return(nil, minio.ErrorResponse{Code: "InternalError", StatusCode: 500, Message: "We encountered an internal error."})

	app := fiber.New()
	svc := newTestService(config.Static(testConfig()), janeSource(), janeDirectory(), testArchive(client))
	require.NoError(t, NewFeatureWithService(svc).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/reports/nope", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/reports/run-1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	f := NewFeature(config.Static(testConfig()), nil)
	assert.Equal(t, "employee", f.Name())
	assert.True(t, f.IsEnabled())
}
