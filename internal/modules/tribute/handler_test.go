package tribute_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTributeCreatePublic(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/tributes", map[string]string{
		"content":   "A true servant of the people.",
		"firstName": "Funke",
		"lastName":  "Adeyemi",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.TributeModel
	testutil.Decode(t, w, &created)
	assert.Equal(t, "Funke Adeyemi", created.Author)
	assert.Equal(t, 0, created.Likes)
	assert.False(t, created.IsPinned)
}

func TestTributeListPinnedFirst(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	require.NoError(t, db.Create(&models.TributeModel{Content: "first", Author: "A"}).Error)
	require.NoError(t, db.Create(&models.TributeModel{Content: "second", Author: "B"}).Error)
	require.NoError(t, db.Create(&models.TributeModel{Content: "pinned", Author: "C", IsPinned: true}).Error)

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/tributes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Tributes []models.TributeModel `json:"tributes"`
		Total    int64                 `json:"total"`
	}
	testutil.Decode(t, w, &page)
	require.Len(t, page.Tributes, 3)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, "pinned", page.Tributes[0].Content)
}

// likeRequest posts a like, optionally replaying the visitor cookie from an
// earlier response.
func likeRequest(t *testing.T, r http.Handler, id string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/tributes/"+id+"/like", strings.NewReader(""))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTributeLikeOncePerVisitor(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	item := models.TributeModel{Content: "liked", Author: "A"}
	require.NoError(t, db.Create(&item).Error)

	w := likeRequest(t, r, item.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var liked models.TributeModel
	testutil.Decode(t, w, &liked)
	assert.Equal(t, 1, liked.Likes)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "first like should set the visitor cookie")

	// The same visitor cannot like twice.
	w = likeRequest(t, r, item.ID, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You have already liked this tribute")

	var stored models.TributeModel
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, 1, stored.Likes)

	// A different visitor can.
	w = likeRequest(t, r, item.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, 2, stored.Likes)
}

func TestTributeVisitorCookieCrossOrigin(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	item := models.TributeModel{Content: "liked", Author: "A"}
	require.NoError(t, db.Create(&item).Error)

	// Behind a TLS-terminating proxy the cookie must survive cross-site
	// POSTs from the frontend origin.
	req := httptest.NewRequest(http.MethodPost, "/api/tributes/"+item.ID+"/like", strings.NewReader(""))
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "visitor_id", cookies[0].Name)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
	assert.True(t, cookies[0].HttpOnly)
}

func TestTributeLikeNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	w := likeRequest(t, r, "00000000-0000-0000-0000-000000000000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Tribute not found")
}

func TestTributePinRequiresToken(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	item := models.TributeModel{Content: "pin me", Author: "A"}
	require.NoError(t, db.Create(&item).Error)

	w := testutil.DoJSON(t, r, http.MethodPatch, "/api/tributes/"+item.ID+"/pin", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token := testutil.AdminToken(t, "admin-1", "boss")
	w = testutil.DoJSON(t, r, http.MethodPatch, "/api/tributes/"+item.ID+"/pin", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var pinned models.TributeModel
	testutil.Decode(t, w, &pinned)
	assert.True(t, pinned.IsPinned)

	// Toggling again unpins.
	w = testutil.DoJSON(t, r, http.MethodPatch, "/api/tributes/"+item.ID+"/pin", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &pinned)
	assert.False(t, pinned.IsPinned)
}

func TestTributeAdminCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	token := testutil.AdminToken(t, "admin-1", "boss")

	// All admin routes refuse anonymous callers.
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/admin/tributes", map[string]interface{}{
		"content": "x", "author": "y",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/admin/tributes", map[string]interface{}{
		"content":  "From the dashboard",
		"author":   "Office of the Member",
		"isPinned": true,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.TributeModel
	testutil.Decode(t, w, &created)
	assert.True(t, created.IsPinned)

	w = testutil.DoJSON(t, r, http.MethodPut, "/api/admin/tributes/"+created.ID, map[string]interface{}{
		"content": "Edited content",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.TributeModel
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "Edited content", stored.Content)
	assert.True(t, stored.IsPinned)

	w = testutil.DoJSON(t, r, http.MethodDelete, "/api/admin/tributes/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tribute deleted successfully")

	var count int64
	db.Model(&models.TributeModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
