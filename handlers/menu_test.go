package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante-africa/ristorante/database/dbhelper"
	"github.com/ristorante-africa/ristorante/models"
)

// fakeMenuStore keeps the catalog in a map so the handlers run without postgres.
type fakeMenuStore struct {
	items map[uuid.UUID]models.MenuItem
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{items: make(map[uuid.UUID]models.MenuItem)}
}

func (f *fakeMenuStore) ListMenuItems(all bool) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, item := range f.items {
		if all || item.Available {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeMenuStore) GetMenuItem(id uuid.UUID) (models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return models.MenuItem{}, dbhelper.ErrMenuItemNotFound
	}
	return item, nil
}

func (f *fakeMenuStore) CreateMenuItem(item *models.MenuItem) error {
	item.ID = uuid.New()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeMenuStore) UpdateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if _, ok := f.items[item.ID]; !ok {
		return models.MenuItem{}, dbhelper.ErrMenuItemNotFound
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeMenuStore) DeleteMenuItem(id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return dbhelper.ErrMenuItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMenuStore) ReplaceMenu(items []models.MenuItem) error {
	f.items = make(map[uuid.UUID]models.MenuItem)
	for _, item := range items {
		item.ID = uuid.New()
		f.items[item.ID] = item
	}
	return nil
}

func (f *fakeMenuStore) ClearMenu() (int64, error) {
	n := int64(len(f.items))
	f.items = make(map[uuid.UUID]models.MenuItem)
	return n, nil
}

func setupMenuHandlers(t *testing.T) *fakeMenuStore {
	t.Helper()
	store := newFakeMenuStore()
	Menu = store
	return store
}

func menuRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/menu", ListMenu).Methods("GET")
	r.HandleFunc("/api/menu", CreateMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/sync", SyncMenu).Methods("POST")
	r.HandleFunc("/api/menu/clear", ClearMenu).Methods("POST")
	r.HandleFunc("/api/menu/{id}", UpdateMenuItem).Methods("PATCH")
	r.HandleFunc("/api/menu/{id}", DeleteMenuItem).Methods("DELETE")
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListMenu_PublicHidesUnavailable(t *testing.T) {
	store := setupMenuHandlers(t)
	store.items[uuid.New()] = models.MenuItem{Name: "on", Available: true}
	store.items[uuid.New()] = models.MenuItem{Name: "off", Available: false}

	w := doJSON(t, menuRouter(), http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "on", items[0].Name)
}

func TestCreateMenuItem(t *testing.T) {
	setupMenuHandlers(t)

	w := doJSON(t, menuRouter(), http.MethodPost, "/api/menu", map[string]interface{}{
		"name":        "Tiramisu",
		"description": "Classic Italian dessert",
		"price":       8.99,
		"category":    "dessert",
		"tags":        []string{"vegetarian", "bogus"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var item models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.True(t, item.Available, "available defaults to true")
	assert.Equal(t, []string{"vegetarian"}, item.Tags, "unknown tags are dropped")
}

func TestCreateMenuItem_Validation(t *testing.T) {
	setupMenuHandlers(t)
	router := menuRouter()

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"description": "d", "price": 1.0, "category": "main"}},
		{"missing price", map[string]interface{}{"name": "n", "description": "d", "category": "main"}},
		{"negative price", map[string]interface{}{"name": "n", "description": "d", "price": -1.0, "category": "main"}},
		{"bad category", map[string]interface{}{"name": "n", "description": "d", "price": 1.0, "category": "sides"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/menu", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateMenuItem_Partial(t *testing.T) {
	store := setupMenuHandlers(t)
	id := uuid.New()
	store.items[id] = models.MenuItem{
		ID: id, Name: "Espresso", Description: "strong", Price: 2.99,
		Category: models.CategoryBeverage, Available: true,
	}

	w := doJSON(t, menuRouter(), http.MethodPatch, "/api/menu/"+id.String(), map[string]interface{}{
		"price":     3.49,
		"available": false,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var item models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 3.49, item.Price)
	assert.False(t, item.Available)
	assert.Equal(t, "Espresso", item.Name, "untouched fields survive")
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	setupMenuHandlers(t)

	w := doJSON(t, menuRouter(), http.MethodPatch, "/api/menu/"+uuid.NewString(), map[string]interface{}{"price": 1.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMenuItem(t *testing.T) {
	store := setupMenuHandlers(t)
	id := uuid.New()
	store.items[id] = models.MenuItem{ID: id, Name: "gone"}

	router := menuRouter()
	w := doJSON(t, router, http.MethodDelete, "/api/menu/"+id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.items)

	w = doJSON(t, router, http.MethodDelete, "/api/menu/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSyncMenu_ReplacesCatalog(t *testing.T) {
	store := setupMenuHandlers(t)
	store.items[uuid.New()] = models.MenuItem{Name: "leftover"}

	w := doJSON(t, menuRouter(), http.MethodPost, "/api/menu/sync", nil)
	require.Equal(t, http.StatusOK, w.Code)

	defaults := dbhelper.DefaultMenuItems()
	assert.Len(t, store.items, len(defaults))
	for _, item := range store.items {
		assert.NotEqual(t, "leftover", item.Name)
	}
}

func TestClearMenu(t *testing.T) {
	store := setupMenuHandlers(t)
	store.items[uuid.New()] = models.MenuItem{Name: "a"}
	store.items[uuid.New()] = models.MenuItem{Name: "b"}

	w := doJSON(t, menuRouter(), http.MethodPost, "/api/menu/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["deletedCount"])
	assert.Empty(t, store.items)
}
