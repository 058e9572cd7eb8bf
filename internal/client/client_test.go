package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/controller"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestServer(t *testing.T) *Client {
	t.Helper()

	store := storage.New(filepath.Join(t.TempDir(), "applications.json"))
	ac := controller.NewApplicationController(store)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/stats", ac.GetStats)
	api.GET("/applications", ac.ListApplications)
	api.GET("/applications/:id", ac.GetApplication)
	api.POST("/applications", ac.CreateApplication)
	api.PUT("/applications/:id", ac.UpdateApplication)
	api.DELETE("/applications/:id", ac.DeleteApplication)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return New(srv.URL)
}

func validInput() model.ApplicationInput {
	return model.ApplicationInput{
		Company: "Acme",
		Role:    "SWE",
		Date:    "2026-02-01",
		Status:  model.StatusApplied,
	}
}

func TestClient_CreateAndGet(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	created, err := c.Create(ctx, validInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClient_CreateValidationErrors(t *testing.T) {
	c := newTestServer(t)

	in := validInput()
	in.Company = ""
	in.Status = "Ghosted"
	_, err := c.Create(context.Background(), in)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	require.Len(t, apiErr.Messages, 2)
	assert.Contains(t, apiErr.Messages[0], "company")
}

func TestClient_GetNotFound(t *testing.T) {
	c := newTestServer(t)

	_, err := c.Get(context.Background(), 999)
	assert.True(t, IsNotFound(err))
}

func TestClient_UpdateAndStats(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	created, err := c.Create(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Status = model.StatusOffer
	updated, err := c.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, model.StatusOffer, updated.Status)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[model.StatusOffer])
	assert.Equal(t, "100.00%", stats.OfferRate)
}

func TestClient_Delete(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	created, err := c.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, created.ID))
	assert.True(t, IsNotFound(c.Delete(ctx, created.ID)))
}

func TestClient_ListWithQuery(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	interview := validInput()
	interview.Status = model.StatusInterview
	interview.Date = "2026-03-01"

	_, err := c.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = c.Create(ctx, interview)
	require.NoError(t, err)

	apps, err := c.List(ctx, model.StatusInterview, "")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, model.StatusInterview, apps[0].Status)

	apps, err = c.List(ctx, "", "asc")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "2026-02-01", apps[0].Date)
}
