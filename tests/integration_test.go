package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"linkhub/internal/config"
	"linkhub/internal/handlers"
	"linkhub/internal/models"
	"linkhub/internal/repository"
	"linkhub/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repository.Initialize(db))

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{AppEnv: "test", GeminiModel: "gemini-1.5-flash"}

	activity := repository.NewActivityLog(db)
	links := repository.NewLinkRepository(db, activity, logger)
	categories := repository.NewCategoryRepository(db)
	stats := services.NewStatsService(db, links, activity, logger)
	importer := services.NewImportService(links, logger)
	assistant := services.NewAssistantService(stats, links, logger, "", cfg.GeminiModel)

	h := handlers.NewHandler(cfg, logger, db, links, categories, activity, stats, importer, assistant)
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil), db
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestLinkLifecycle drives a link from creation through clicks, stats
// and deletion over the real HTTP surface.
func TestLinkLifecycle(t *testing.T) {
	r, _ := setupServer(t)

	// seeded defaults are visible immediately
	w := do(r, "GET", "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats map[string]models.CategoryInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Len(t, cats, 6)
	assert.Equal(t, "Machine Learning", cats["machine-learning"].Name)

	// create
	w = do(r, "POST", "/api/links", map[string]string{
		"title":    "Scikit-learn Guide",
		"url":      "https://scikit-learn.org",
		"category": "machine-learning",
		"added_by": "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var link models.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))

	// click twice
	for i := 0; i < 2; i++ {
		w = do(r, "POST", fmt.Sprintf("/api/links/%d/click", link.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// stats reflect the click and the creation activity
	w = do(r, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalLinks   int64                  `json:"total_links"`
		TotalClicks  int64                  `json:"total_clicks"`
		MostUsed     string                 `json:"most_used_category"`
		TeamActivity []models.ActivityEntry `json:"team_activity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.TotalLinks)
	assert.EqualValues(t, 2, stats.TotalClicks)
	assert.Equal(t, "machine-learning", stats.MostUsed)
	require.Len(t, stats.TeamActivity, 1)
	assert.Equal(t, "Alice", stats.TeamActivity[0].UserName)

	// update, then delete
	w = do(r, "PUT", fmt.Sprintf("/api/links/%d", link.ID), map[string]string{"title": "Sklearn Guide"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "DELETE", fmt.Sprintf("/api/links/%d", link.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/api/links", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var remaining []models.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &remaining))
	assert.Empty(t, remaining)

	// all three mutations were recorded
	w = do(r, "GET", "/api/activity", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.ActivityEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, models.ActionDeletedLink, entries[0].Action)
	assert.Equal(t, models.ActionUpdatedLink, entries[1].Action)
	assert.Equal(t, models.ActionAddedLink, entries[2].Action)
}

// TestImportAndChat exercises the bulk import pipeline and the fallback
// assistant against the imported corpus.
func TestImportAndChat(t *testing.T) {
	r, _ := setupServer(t)

	w := do(r, "POST", "/api/import", map[string]string{
		"text":     "Great intro to neural networks\nhttps://pytorch.org/tutorials\nhttps://tensorflow.org",
		"category": "deep-learning",
		"added_by": "Bob",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var result services.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, "Great intro to neural networks", result.Links[0].Title)

	w = do(r, "POST", "/api/chat", map[string]string{"message": "neural networks"})
	require.Equal(t, http.StatusOK, w.Code)
	var reply services.ChatReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.NotEmpty(t, reply.Response)
	require.Len(t, reply.RelevantLinks, 1)
	assert.Equal(t, "Great intro to neural networks", reply.RelevantLinks[0].Title)
}

// TestExportRoundTrip checks the export attachment carries every link.
func TestExportRoundTrip(t *testing.T) {
	r, _ := setupServer(t)

	for i := 0; i < 3; i++ {
		w := do(r, "POST", "/api/links", map[string]string{
			"title": fmt.Sprintf("Resource %d", i),
			"url":   "https://example.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(r, "GET", "/api/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	var export struct {
		Count int           `json:"count"`
		Links []models.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	assert.Equal(t, 3, export.Count)
	assert.Len(t, export.Links, 3)
}
