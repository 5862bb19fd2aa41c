package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "store/internal/delivery/context"
	"store/internal/usecase"
	"store/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitCounterMiddleware_Count(t *testing.T) {
	counter := impl.NewVisitCounterService()
	m := NewVisitCounterMiddleware(counter)

	e := echo.New()
	api := e.Group("/api")
	api.Use(m.Count)
	api.GET("/products", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	api.POST("/products", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })
	api.DELETE("/products/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/products", nil),
		httptest.NewRequest(http.MethodGet, "/api/products", nil),
		httptest.NewRequest(http.MethodPost, "/api/products", nil),
		httptest.NewRequest(http.MethodDelete, "/api/products/1", nil),
		httptest.NewRequest(http.MethodGet, "/health", nil),
	} {
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, map[string]int64{
		usecase.VisitKeyGeneral: 4,
		http.MethodGet:          2,
		http.MethodPost:         1,
	}, counter.GetAll())
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seenID string
	var hasLogger bool
	handler := m.Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestID(c)
		hasLogger = deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil) != nil

		return nil
	})

	t.Run("reuses client id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Equal(t, "client-id", seenID)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.True(t, hasLogger)
	})

	t.Run("generates id", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	for name, clientID := range map[string]string{
		"too long":         strings.Repeat("a", maxRequestIDLength+1),
		"log injection":    "abc\nlevel=ERROR msg=forged",
		"header separator": "abc;def",
	} {
		t.Run("replaces "+name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, clientID)
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))

			assert.NotEqual(t, clientID, seenID)
			_, err := uuid.Parse(seenID)
			assert.NoError(t, err)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("4f1c2a7e-9b3d-4c55-8e21-0a6b7c8d9e0f"))
	assert.True(t, validRequestID("edge.lb_01-abc"))
	assert.True(t, validRequestID(strings.Repeat("z", maxRequestIDLength)))

	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID(strings.Repeat("z", maxRequestIDLength+1)))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID("ünicode"))
}
