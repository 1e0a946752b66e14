package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-todo/internal/calendar"
	"smart-todo/internal/model"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
)

type mockUseCase struct {
	out      calendar.SyncOutput
	err      error
	lastSync calendar.SyncInput
	lastList calendar.ListEventsInput
}

func (m *mockUseCase) Sync(ctx context.Context, sc model.Scope, in calendar.SyncInput) (calendar.SyncOutput, error) {
	m.lastSync = in
	return m.out, m.err
}

func (m *mockUseCase) Mirror(ctx context.Context, sc model.Scope, a calendar.Action, t model.Todo) (*calendar.SyncResult, error) {
	return nil, nil
}

func (m *mockUseCase) ListEvents(ctx context.Context, sc model.Scope, in calendar.ListEventsInput) ([]gcalendar.Event, error) {
	m.lastList = in
	return nil, m.err
}

func setupRouter(uc calendar.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/calendar", func(c *gin.Context) {
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"}))
		c.Next()
	})
	h := New(log.NewNop(), uc)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	RegisterRoutes(g, h)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSyncHandler(t *testing.T) {
	t.Run("Create result", func(t *testing.T) {
		uc := &mockUseCase{out: calendar.SyncOutput{Success: true, Result: &calendar.SyncResult{EventID: "evt"}}}
		w := do(setupRouter(uc), http.MethodPost, "/calendar/sync", `{"todoId":"t1","action":"create"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, calendar.ActionCreate, uc.lastSync.Action)

		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body.Data["success"])
		assert.Equal(t, map[string]any{"eventId": "evt"}, body.Data["result"])
	})

	t.Run("Not applicable gives null result", func(t *testing.T) {
		uc := &mockUseCase{out: calendar.SyncOutput{Success: true}}
		w := do(setupRouter(uc), http.MethodPost, "/calendar/sync", `{"todoId":"t1","action":"create"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"result":null`)
	})

	t.Run("Error statuses", func(t *testing.T) {
		cases := map[error]int{
			calendar.ErrTodoNotFound:      http.StatusNotFound,
			calendar.ErrAccessUnavailable: http.StatusForbidden,
			calendar.ErrInvalidAction:     http.StatusBadRequest,
			assert.AnError:                http.StatusInternalServerError,
		}
		for err, code := range cases {
			w := do(setupRouter(&mockUseCase{err: err}), http.MethodPost, "/calendar/sync", `{"todoId":"t1","action":"x"}`)
			assert.Equal(t, code, w.Code, err.Error())
		}
	})

	t.Run("Missing fields", func(t *testing.T) {
		w := do(setupRouter(&mockUseCase{}), http.MethodPost, "/calendar/sync", `{"action":"create"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListEventsHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := do(r, http.MethodGet, "/calendar/events", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"events":[]`)
	assert.Equal(t, time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC), uc.lastList.To)

	w = do(r, http.MethodGet, "/calendar/events?from=2026-04-01&to=2026-04-02T00:00:00Z", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), uc.lastList.From)

	w = do(r, http.MethodGet, "/calendar/events?from=April", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
