package inventory

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hsm-gustavo/smart-pantry/internal/api/auth"
	"github.com/hsm-gustavo/smart-pantry/internal/api/respond"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts the handler behind a stub that injects the identity
// of the user named by the X-Test-User header.
func newTestRouter(t *testing.T, archiver Archiver) http.Handler {
	t.Helper()
	s, _ := newTestService(t, archiver)
	h := NewInventoryHandler(s)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u := r.Header.Get("X-Test-User"); u != "" {
				r = r.WithContext(auth.WithIdentity(r.Context(), auth.Identity{UserID: u, Email: u + "@example.com", Role: db.RoleUser}))
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/stats", h.Stats)
	r.Get("/export", h.Export)
	r.Post("/export/archive", h.Archive)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func do(t *testing.T, h http.Handler, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndList(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/", "alice", `{"name":"Milk","quantity":2,"unit":"L","expiry":"2026-10-20","category":"dairy"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created db.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "alice", created.UserID)
	assert.Equal(t, "2026-10-20T00:00:00.000Z", created.Expiry)

	rec = do(t, h, http.MethodGet, "/", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].ID)
}

func TestList_EmptyIsArray(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/", "alice", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestCreate_Errors(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/", "alice", `{"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp respond.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Missing name", resp.Message)

	rec = do(t, h, http.MethodPost, "/", "alice", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_RequireIdentity(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodPost, "/"},
		{http.MethodGet, "/stats"},
		{http.MethodGet, "/export"},
		{http.MethodPost, "/export/archive"},
		{http.MethodPut, "/abc"},
		{http.MethodDelete, "/abc"},
	} {
		rec := do(t, h, tc.method, tc.path, "", `{"name":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestUpdateAndDelete_CrossUser(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/", "alice", `{"name":"Cheese","quantity":1,"expiry":"2026-10-25"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var it db.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&it))

	rec = do(t, h, http.MethodPut, "/"+it.ID, "bob", `{"quantity":9}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/"+it.ID, "bob", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPut, "/"+it.ID, "alice", `{"quantity":9}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var upd db.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&upd))
	assert.Equal(t, 9, upd.Quantity)
	assert.Equal(t, "Cheese", upd.Name)

	rec = do(t, h, http.MethodDelete, "/"+it.ID, "alice", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodPut, "/"+it.ID, "alice", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate_BlankNameHandler(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/", "alice", `{"name":"Cheese","expiry":"2026-10-25"}`)
	var it db.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&it))

	rec = do(t, h, http.MethodPut, "/"+it.ID, "alice", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsHandler(t *testing.T) {
	h := newTestRouter(t, nil)

	do(t, h, http.MethodPost, "/", "alice", `{"name":"Old","expiry":"2026-10-10","category":"dairy"}`)
	do(t, h, http.MethodPost, "/", "alice", `{"name":"Soon","expiry":"2026-10-17","category":"dairy"}`)
	do(t, h, http.MethodPost, "/", "alice", `{"name":"Later","expiry":"2027-01-01","category":"canned"}`)

	rec := do(t, h, http.MethodGet, "/stats", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":3,"expired":1,"expiringSoon":1,"categoriesCount":{"dairy":2,"canned":1}}`, rec.Body.String())
}

func TestStatsHandler_CorruptExpiry(t *testing.T) {
	h := newTestRouter(t, nil)

	do(t, h, http.MethodPost, "/", "alice", `{"name":"Odd","expiry":"whenever"}`)

	rec := do(t, h, http.MethodGet, "/stats", "alice", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExportHandler(t *testing.T) {
	h := newTestRouter(t, nil)

	do(t, h, http.MethodPost, "/", "alice", `{"name":"Milk","expiry":"2026-10-20"}`)

	rec := do(t, h, http.MethodGet, "/export", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,name,quantity"))
	assert.Contains(t, rec.Body.String(), "Milk")
}

func TestArchiveHandler(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/export/archive", "alice", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	arch := &fakeArchiver{}
	rec = do(t, newTestRouter(t, arch), http.MethodPost, "/export/archive", "alice", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp ArchiveResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pantry-exports", resp.Bucket)
	assert.Equal(t, arch.key, resp.Key)
}
