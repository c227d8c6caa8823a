package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaclara/quickcapture/internal/domain/capture/service"
)

func newTestServer() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	h := NewCaptureHandler(service.NewService(logger), logger)
	h.Register(e.Group("/api/v1"))
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCaptureHandler_ParseDate(t *testing.T) {
	e := newTestServer()

	t.Run("parses relative date", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/date", `{"text":"ontem às 14h30"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		wantDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		assert.JSONEq(t, fmt.Sprintf(`{"date":%q,"time":"14:30"}`, wantDate), rec.Body.String())
	})

	t.Run("surfaces failure reason", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/date", `{"text":"ontem"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"time not recognized"}`, rec.Body.String())
	})

	t.Run("rejects empty text", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/date", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"text is required"}`, rec.Body.String())
	})
}

func TestCaptureHandler_ParseAmount(t *testing.T) {
	e := newTestServer()

	t.Run("numeric path", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/amount", `{"text":"r$ 1.500,00"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"amount":"1500.00"}`, rec.Body.String())
	})

	t.Run("word path", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/amount", `{"text":"trinta e cinco reais"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"amount":"35.00"}`, rec.Body.String())
	})

	t.Run("unrecognized amount", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/amount", `{"text":"almoço com amigos"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid amount"}`, rec.Body.String())
	})
}

func TestCaptureHandler_BuildDraft(t *testing.T) {
	e := newTestServer()

	t.Run("builds draft", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/draft",
			`{"text":"ontem às 14h30 trinta e cinco reais","title":"Almoço","category_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `"title":"Almoço"`)
		assert.Contains(t, body, `"category_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`)
		assert.Contains(t, body, `"time":"14:30"`)
		assert.Contains(t, body, `"amount":3500`)
		assert.Contains(t, body, `"currency":"BRL"`)
	})

	t.Run("invalid category id", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/draft", `{"text":"ontem às 14h30 trinta reais","category_id":"nope"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid category_id"}`, rec.Body.String())
	})

	t.Run("date failure reason propagates", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/draft", `{"text":"almoço às 14h30 trinta reais"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"unrecognized format"}`, rec.Body.String())
	})

	t.Run("amount failure", func(t *testing.T) {
		rec := postJSON(e, "/api/v1/capture/draft", `{"text":"ontem às 14h30 sem valor"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid amount"}`, rec.Body.String())
	})
}
