package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eleven-am/tick/internal/todo"
)

// fakeStore is an in-memory RecordStore for handler tests.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	clock  int64
	todos  map[int64]todo.Record
	fail   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{todos: make(map[int64]todo.Record)}
}

func (f *fakeStore) List(ctx context.Context) ([]todo.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}

	records := make([]todo.Record, 0, len(f.todos))
	for _, r := range f.todos {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt != records[j].CreatedAt {
			return records[i].CreatedAt > records[j].CreatedAt
		}
		return records[i].ID > records[j].ID
	})
	return records, nil
}

func (f *fakeStore) Insert(ctx context.Context, text string) (todo.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return todo.Record{}, f.fail
	}

	f.nextID++
	f.clock++
	record := todo.Record{ID: f.nextID, Text: text, CreatedAt: f.clock}
	f.todos[record.ID] = record
	return record, nil
}

func (f *fakeStore) SetCompleted(ctx context.Context, id int64, completed bool) (todo.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return todo.Record{}, f.fail
	}

	record, ok := f.todos[id]
	if !ok {
		return todo.Record{}, todo.ErrNotFound
	}
	record.Completed = completed
	f.todos[id] = record
	return record, nil
}

func (f *fakeStore) Remove(ctx context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return 0, f.fail
	}

	if _, ok := f.todos[id]; !ok {
		return 0, nil
	}
	delete(f.todos, id)
	return 1, nil
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeTodo(t *testing.T, rec *httptest.ResponseRecorder) todo.Record {
	t.Helper()
	var resp struct {
		Todo todo.Record `json:"todo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Todo
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, int) {
	t.Helper()
	var resp struct {
		Error struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Message, resp.Error.Status
}

func TestListEmptyStore(t *testing.T) {
	router := NewHandler(newFakeStore()).Router()

	rec := doRequest(t, router, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"todos": []}`, rec.Body.String())
}

func TestFullLifecycle(t *testing.T) {
	router := NewHandler(newFakeStore()).Router()

	rec := doRequest(t, router, http.MethodPost, "/api/todos", map[string]any{"text": "Buy milk"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeTodo(t, rec)
	assert.Equal(t, "Buy milk", created.Text)
	assert.False(t, created.Completed)
	assert.NotZero(t, created.ID)

	rec = doRequest(t, router, http.MethodPut, "/api/todos/1", map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeTodo(t, rec)
	assert.True(t, updated.Completed)
	// completed must be a real JSON boolean on the wire
	assert.Contains(t, rec.Body.String(), `"completed":true`)

	rec = doRequest(t, router, http.MethodDelete, "/api/todos/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "todo deleted successfully"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodPut, "/api/todos/1", map[string]any{"completed": false})
	require.Equal(t, http.StatusNotFound, rec.Code)
	message, status := decodeError(t, rec)
	assert.Equal(t, "todo not found", message)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "empty string", body: map[string]any{"text": ""}},
		{name: "whitespace only", body: map[string]any{"text": "   "}},
		{name: "null text", body: map[string]any{"text": nil}},
		{name: "missing text", body: map[string]any{}},
		{name: "non-string text", body: map[string]any{"text": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			router := NewHandler(store).Router()

			rec := doRequest(t, router, http.MethodPost, "/api/todos", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			message, status := decodeError(t, rec)
			assert.Contains(t, message, "empty")
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Empty(t, store.todos)
		})
	}
}

func TestCreateTrimsText(t *testing.T) {
	store := newFakeStore()
	router := NewHandler(store).Router()

	rec := doRequest(t, router, http.MethodPost, "/api/todos", map[string]any{"text": "  ok  "})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ok", decodeTodo(t, rec).Text)
}

func TestUpdateValidation(t *testing.T) {
	store := newFakeStore()
	router := NewHandler(store).Router()
	_, err := store.Insert(context.Background(), "Buy milk")
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPut, "/api/todos/1", map[string]any{"completed": "yes"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	message, _ := decodeError(t, rec)
	assert.Contains(t, message, "boolean")

	// record untouched
	assert.False(t, store.todos[1].Completed)
}

func TestDeleteMissing(t *testing.T) {
	router := NewHandler(newFakeStore()).Router()

	rec := doRequest(t, router, http.MethodDelete, "/api/todos/9999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	message, status := decodeError(t, rec)
	assert.Equal(t, "todo not found", message)
	assert.Equal(t, 404, status)
}

func TestNonNumericIDFallsThrough(t *testing.T) {
	router := NewHandler(newFakeStore()).Router()

	rec := doRequest(t, router, http.MethodPut, "/api/todos/abc", map[string]any{"completed": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	router := NewHandler(newFakeStore()).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/todos", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	message, _ := decodeError(t, rec)
	assert.Contains(t, message, "JSON")
}

func TestStoreFailureHidesDetail(t *testing.T) {
	store := newFakeStore()
	store.fail = errors.New("connection refused to db host 10.0.0.7")
	router := NewHandler(store).Router()

	rec := doRequest(t, router, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	message, status := decodeError(t, rec)
	assert.Equal(t, "internal server error", message)
	assert.Equal(t, 500, status)
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}

func TestListOrdering(t *testing.T) {
	store := newFakeStore()
	router := NewHandler(store).Router()

	for _, text := range []string{"A", "B", "C"} {
		rec := doRequest(t, router, http.MethodPost, "/api/todos", map[string]any{"text": text})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Todos []todo.Record `json:"todos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Todos, 3)
	assert.Equal(t, "C", resp.Todos[0].Text)
	assert.Equal(t, "B", resp.Todos[1].Text)
	assert.Equal(t, "A", resp.Todos[2].Text)
}
