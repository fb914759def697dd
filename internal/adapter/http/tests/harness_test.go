package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todolist/internal/adapter/clock"
	"todolist/internal/adapter/events"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/app/service"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type storage interface {
	ports.OwnerStateRepository
	ports.HealthChecker
}

// apiHarness wires the real router and service over the given storage with a
// manual clock and an in-memory event recorder.
type apiHarness struct {
	router   *gin.Engine
	clock    *clock.ManualClock
	recorder *events.Recorder
}

func newAPIHarness(store storage, driver string, limits domain.Limits) *apiHarness {
	manual := clock.NewManualClock(1000)
	recorder := events.NewRecorder()
	todoService := service.NewSerializedTodoService(
		service.NewTodoService(store, manual, recorder, limits),
	)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(store, driver),
		handlers.NewTodoHandler(todoService),
	)

	return &apiHarness{router: router, clock: manual, recorder: recorder}
}

func (h *apiHarness) do(t *testing.T, method, path, owner, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if owner != "" {
		req.Header.Set(middleware.OwnerHeader, owner)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *apiHarness) create(t *testing.T, owner, title, priority string) dto.TodoItem {
	t.Helper()

	rec := h.do(t, http.MethodPost, "/api/todos", owner, `{"title":"`+title+`","priority":"`+priority+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.TodoItem](t, rec)
}

func (h *apiHarness) stats(t *testing.T, owner string) dto.StatisticsItem {
	t.Helper()

	rec := h.do(t, http.MethodGet, "/api/stats", owner, "")
	require.Equal(t, http.StatusOK, rec.Code)
	return decode[dto.StatisticsItem](t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
