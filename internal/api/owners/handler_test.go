package owners

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"property-catalog/internal/domain/catalog"
	"property-catalog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOwnerRepo struct {
	owners []catalog.Owner
}

func (f *fakeOwnerRepo) GetAll(context.Context) ([]catalog.Owner, error) {
	return f.owners, nil
}

func (f *fakeOwnerRepo) GetByID(_ context.Context, id string) (*catalog.Owner, error) {
	for i := range f.owners {
		if f.owners[i].ID == id {
			return &f.owners[i], nil
		}
	}
	return nil, repository.ErrOwnerNotFound
}

func (f *fakeOwnerRepo) Create(_ context.Context, owner *catalog.Owner) error {
	if owner.ID == "" {
		owner.ID = "o-new"
	}
	f.owners = append(f.owners, *owner)
	return nil
}

func (f *fakeOwnerRepo) Update(_ context.Context, owner *catalog.Owner) error {
	for i := range f.owners {
		if f.owners[i].ID == owner.ID {
			f.owners[i] = *owner
			return nil
		}
	}
	return repository.ErrOwnerNotFound
}

func (f *fakeOwnerRepo) Delete(_ context.Context, id string) error {
	for i := range f.owners {
		if f.owners[i].ID == id {
			f.owners = append(f.owners[:i], f.owners[i+1:]...)
			return nil
		}
	}
	return repository.ErrOwnerNotFound
}

func newTestRouter(repo *fakeOwnerRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(repo)

	r := gin.New()
	r.GET("/api/owners", h.GetOwners)
	r.POST("/api/owners", h.CreateOwner)
	r.PUT("/api/owners/:id", h.UpdateOwner)
	r.DELETE("/api/owners/:id", h.DeleteOwner)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetOwnersProjectsIDAndName(t *testing.T) {
	repo := &fakeOwnerRepo{owners: []catalog.Owner{
		{ID: "o-1", Name: "Ana", Address: "Calle 1", Photo: "https://img.example/a.jpg"},
	}}
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/owners", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"idOwner":"o-1","name":"Ana"}]`, w.Body.String())
}

func TestCreateOwnerReturnsBareID(t *testing.T) {
	repo := &fakeOwnerRepo{}
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/owners", gin.H{
		"name": "Ana", "address": "Calle 1", "photo": "https://img.example/a.jpg", "birthday": "1985-03-15",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `"o-new"`, w.Body.String())
	require.Len(t, repo.owners, 1)
	assert.Equal(t, 1985, repo.owners[0].Birthday.Year())
}

func TestCreateOwnerMissingName(t *testing.T) {
	r := newTestRouter(&fakeOwnerRepo{})

	w := doJSON(t, r, http.MethodPost, "/api/owners", gin.H{"address": "Calle 1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestUpdateOwner(t *testing.T) {
	repo := &fakeOwnerRepo{owners: []catalog.Owner{{ID: "o-1", Name: "Ana", Address: "Calle 1"}}}
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/api/owners/o-1", gin.H{"name": "Ana María", "address": "Calle 2"})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Ana María", repo.owners[0].Name)
	assert.Equal(t, "Calle 2", repo.owners[0].Address)
}

func TestUpdateOwnerNotFound(t *testing.T) {
	r := newTestRouter(&fakeOwnerRepo{})

	w := doJSON(t, r, http.MethodPut, "/api/owners/nope", gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOwner(t *testing.T) {
	repo := &fakeOwnerRepo{owners: []catalog.Owner{{ID: "o-1"}}}
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodDelete, "/api/owners/o-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.owners)
}

func TestDeleteOwnerNotFound(t *testing.T) {
	r := newTestRouter(&fakeOwnerRepo{})

	w := doJSON(t, r, http.MethodDelete, "/api/owners/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
