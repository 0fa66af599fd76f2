package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer counts GET hits per path so cache behavior is observable.
type testServer struct {
	*httptest.Server
	getHits int64
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/owners", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&ts.getHits, 1)
		json.NewEncoder(w).Encode([]Owner{{IDOwner: "o-1", Name: "Ana"}})
	})
	mux.HandleFunc("POST /api/owners", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode("o-2")
	})
	mux.HandleFunc("GET /api/properties", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&ts.getHits, 1)
		json.NewEncoder(w).Encode(PagedProperties{
			PageNumber: 1, PageSize: 10, TotalPages: 1, TotalRecords: 1,
			Data: []Property{{IDProperty: "p-1", Name: "Loft", Price: decimal.NewFromInt(100)}},
		})
	})
	mux.HandleFunc("PUT /api/properties/p-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/properties/missing", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&ts.getHits, 1)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Property not found"})
	})

	ts.Server = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestOwnersCached(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL + "/api")

	owners, err := c.Owners(context.Background())
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Ana", owners[0].Name)

	_, err = c.Owners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&ts.getHits), "second read must come from cache")
}

func TestCreateOwnerInvalidatesOwnersCache(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL + "/api")

	_, err := c.Owners(context.Background())
	require.NoError(t, err)

	id, err := c.CreateOwner(context.Background(), CreateOwnerInput{Name: "Luis"})
	require.NoError(t, err)
	assert.Equal(t, "o-2", id)

	_, err = c.Owners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&ts.getHits), "mutation must drop the cached list")
}

func TestMutationInvalidatesOnlyItsPrefix(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL + "/api")

	_, err := c.Owners(context.Background())
	require.NoError(t, err)
	_, err = c.SearchProperties(context.Background(), PropertyFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(2), atomic.LoadInt64(&ts.getHits))

	// price update touches properties, owners stay cached
	require.NoError(t, c.UpdatePropertyPrice(context.Background(), "p-1", decimal.NewFromInt(250)))

	_, err = c.Owners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&ts.getHits))

	_, err = c.SearchProperties(context.Background(), PropertyFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), atomic.LoadInt64(&ts.getHits))
}

func TestSearchPropertiesFilterEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(PagedProperties{})
	}))
	defer srv.Close()

	min := decimal.NewFromInt(100)
	c := New(srv.URL + "/api")
	_, err := c.SearchProperties(context.Background(), PropertyFilter{
		Name:       "casa",
		MinPrice:   &min,
		PageNumber: 2,
		PageSize:   5,
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "name=casa")
	assert.Contains(t, gotQuery, "minPrice=100")
	assert.Contains(t, gotQuery, "pageNumber=2")
	assert.Contains(t, gotQuery, "pageSize=5")
	assert.NotContains(t, gotQuery, "address")
}

func TestAPIErrorFromMessageBody(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL + "/api")

	_, err := c.Property(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Property not found", apiErr.Message)
}

func TestNoContentResponse(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL + "/api")

	assert.NoError(t, c.UpdatePropertyPrice(context.Background(), "p-1", decimal.NewFromInt(300)))
}
