package news_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsPayload(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"content":     "summary of " + title,
		"fullContent": "full body of " + title,
		"tags":        []string{"politics"},
	}
}

func TestNewsCreateRequiresToken(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/news", newsPayload("No Token"), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/news", newsPayload("Bad Token"), "garbage")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestNewsCreateAndGetBySlug(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	token := testutil.AdminToken(t, "admin-1", "boss")

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/news", newsPayload("Badagry Seaport Update"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.NewsModel
	testutil.Decode(t, w, &created)
	assert.Equal(t, "badagry-seaport-update", created.Slug)
	assert.NotEmpty(t, created.ID)

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/news/badagry-seaport-update", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.NewsModel
	testutil.Decode(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, []string{"politics"}, []string(fetched.Tags))
}

func TestNewsSlugCollision(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	token := testutil.AdminToken(t, "admin-1", "boss")

	slugs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		w := testutil.DoJSON(t, r, http.MethodPost, "/api/news", newsPayload("Same Title"), token)
		require.Equal(t, http.StatusCreated, w.Code)
		var created models.NewsModel
		testutil.Decode(t, w, &created)
		slugs = append(slugs, created.Slug)
	}
	assert.Equal(t, []string{"same-title", "same-title-1", "same-title-2"}, slugs)
}

func TestNewsListPaginationAndPinned(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		item := models.NewsModel{
			Title:   fmt.Sprintf("Article %d", i),
			Slug:    fmt.Sprintf("article-%d", i),
			Content: "c", FullContent: "f",
			Tags:     []string{},
			Date:     base.Add(time.Duration(i) * time.Hour),
			IsPinned: i == 2,
		}
		require.NoError(t, db.Create(&item).Error)
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/news?page=1&limit=5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		News        []models.NewsModel `json:"news"`
		Total       int64              `json:"total"`
		TotalPages  int                `json:"totalPages"`
		CurrentPage int                `json:"currentPage"`
	}
	testutil.Decode(t, w, &page)
	assert.EqualValues(t, 12, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.News, 5)

	// The pinned article leads regardless of date, the rest follow newest
	// first.
	assert.Equal(t, "article-2", page.News[0].Slug)
	assert.Equal(t, "article-11", page.News[1].Slug)

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/news?page=3&limit=5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &page)
	assert.Len(t, page.News, 2)
	assert.Equal(t, 3, page.CurrentPage)
}

func TestNewsListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	rows := []models.NewsModel{
		{Title: "Seaport Groundbreaking", Slug: "seaport", Content: "construction begins", FullContent: "f", Tags: []string{"infrastructure"}},
		{Title: "Scholarship Winners", Slug: "scholars", Content: "quiz results", FullContent: "f", Tags: []string{"education"}},
	}
	for i := range rows {
		rows[i].Date = time.Now()
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	var page struct {
		News []models.NewsModel `json:"news"`
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/news?tag=education", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &page)
	require.Len(t, page.News, 1)
	assert.Equal(t, "scholars", page.News[0].Slug)

	// Search is case-insensitive over title and content.
	w = testutil.DoJSON(t, r, http.MethodGet, "/api/news?search=SEAPORT", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &page)
	require.Len(t, page.News, 1)
	assert.Equal(t, "seaport", page.News[0].Slug)
}

func TestNewsUpdateKeepsSlug(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	token := testutil.AdminToken(t, "admin-1", "boss")

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/news", newsPayload("Original Title"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	update := newsPayload("Renamed Title")
	update["isPinned"] = true
	w = testutil.DoJSON(t, r, http.MethodPut, "/api/news/original-title", update, token)
	require.Equal(t, http.StatusOK, w.Code)

	var item models.NewsModel
	require.NoError(t, db.Where("slug = ?", "original-title").First(&item).Error)
	assert.Equal(t, "Renamed Title", item.Title)
	assert.True(t, item.IsPinned)
}

func TestNewsNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	token := testutil.AdminToken(t, "admin-1", "boss")

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/news/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPut, "/api/news/missing", newsPayload("X"), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, "/api/news/missing", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsDelete(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	token := testutil.AdminToken(t, "admin-1", "boss")

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/news", newsPayload("Short Lived"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, "/api/news/short-lived", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "News deleted successfully")

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/news/short-lived", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
