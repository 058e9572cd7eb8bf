package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/storage"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()

	store := storage.New(filepath.Join(t.TempDir(), "applications.json"))
	ac := NewApplicationController(store)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/stats", ac.GetStats)
	api.GET("/applications", ac.ListApplications)
	api.GET("/applications/:id", ac.GetApplication)
	api.POST("/applications", ac.CreateApplication)
	api.PUT("/applications/:id", ac.UpdateApplication)
	api.DELETE("/applications/:id", ac.DeleteApplication)

	return r, store
}

func validBody() gin.H {
	return gin.H{
		"company": "Acme",
		"role":    "SWE",
		"date":    "2026-02-01",
		"status":  "Applied",
	}
}

func TestCreateApplication_Success(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, resp := testutil.MakeJSONRequest(validBody(), r, "/api/applications", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Acme", resp["company"])
	id, ok := resp["id"]
	assert.True(t, ok)
	assert.Greater(t, id, float64(0))
}

func TestCreateApplication_MissingCompany(t *testing.T) {
	r, store := newTestRouter(t)

	body := validBody()
	delete(body, "company")
	rec, resp := testutil.MakeJSONRequest(body, r, "/api/applications", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := resp["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "company")

	apps, err := store.List("", "")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestCreateApplication_InvalidStatus(t *testing.T) {
	r, _ := newTestRouter(t)

	body := validBody()
	body["status"] = "Ghosted"
	rec, resp := testutil.MakeJSONRequest(body, r, "/api/applications", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := resp["errors"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, errs[0], "status")
}

func TestGetApplication_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/applications/999", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp["error"], "not found")
}

func TestGetApplication_NonNumericID(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := testutil.MakeJSONRequest(nil, r, "/api/applications/abc", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateApplication_NotFound(t *testing.T) {
	r, store := newTestRouter(t)

	rec, _ := testutil.MakeJSONRequest(validBody(), r, "/api/applications/999", http.MethodPut)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	apps, err := store.List("", "")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestUpdateApplication_PathIDWins(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, created := testutil.MakeJSONRequest(validBody(), r, "/api/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(created["id"].(float64))

	body := validBody()
	body["id"] = id + 500
	body["status"] = "Interview"
	rec, resp := testutil.MakeJSONRequest(body, r, fmt.Sprintf("/api/applications/%d", id), http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(id), resp["id"])
	assert.Equal(t, "Interview", resp["status"])
}

func TestDeleteApplication_Success(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, created := testutil.MakeJSONRequest(validBody(), r, "/api/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(created["id"].(float64))

	rec, resp := testutil.MakeJSONRequest(nil, r, fmt.Sprintf("/api/applications/%d", id), http.MethodDelete)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(id), resp["id"])

	// second delete reports not found
	rec, _ = testutil.MakeJSONRequest(nil, r, fmt.Sprintf("/api/applications/%d", id), http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListApplications_StatusFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	interview := validBody()
	interview["status"] = "Interview"
	interview["date"] = "2026-03-01"

	rec, _ := testutil.MakeJSONRequest(validBody(), r, "/api/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = testutil.MakeJSONRequest(interview, r, "/api/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	list := performList(t, r, "/api/applications?status=Interview")
	require.Len(t, list, 1)
	assert.Equal(t, "Interview", list[0].Status)
}

func TestListApplications_SortToggle(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, date := range []string{"2026-01-15", "2026-03-01", "2026-02-10"} {
		body := validBody()
		body["date"] = date
		rec, _ := testutil.MakeJSONRequest(body, r, "/api/applications", http.MethodPost)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	list := performList(t, r, "/api/applications")
	require.Len(t, list, 3)
	assert.Equal(t, "2026-03-01", list[0].Date)

	list = performList(t, r, "/api/applications?sort=asc")
	assert.Equal(t, "2026-01-15", list[0].Date)
}

func TestStats_Empty(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/stats", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), resp["total"])
	assert.Equal(t, "0%", resp["offerRate"])
}

func TestApplicationLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	// create
	rec, created := testutil.MakeJSONRequest(validBody(), r, "/api/applications", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(created["id"].(float64))

	// fetch the same record back
	rec, fetched := testutil.MakeJSONRequest(nil, r, fmt.Sprintf("/api/applications/%d", id), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, fetched)

	// move it to Offer
	body := validBody()
	body["status"] = "Offer"
	rec, updated := testutil.MakeJSONRequest(body, r, fmt.Sprintf("/api/applications/%d", id), http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Offer", updated["status"])

	// stats reflect the offer
	rec, stats := testutil.MakeJSONRequest(nil, r, "/api/stats", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), stats["total"])
	byStatus, ok := stats["byStatus"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), byStatus["Offer"])
	assert.Equal(t, "100.00%", stats["offerRate"])
}

// performList decodes a list response body into records.
func performList(t *testing.T, r *gin.Engine, endpoint string) []model.Application {
	t.Helper()

	rec, _ := testutil.MakeJSONRequest(nil, r, endpoint, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	list := []model.Application{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}
