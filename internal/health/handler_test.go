package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	err error
}

func (s *stubRepository) CountAsaasLogs(_ context.Context) (int64, error) {
	return 0, s.err
}

func getHealth(handler *Handler) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	_ = handler.HealthHandler(e.NewContext(req, rec))
	return rec
}

func TestHealthHandlerOk(t *testing.T) {
	handler := NewHealthHandler(&stubRepository{})

	rec := getHealth(handler)

	require.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "connected", response.Supabase)
	assert.NotEmpty(t, response.Timestamp)
}

func TestHealthHandlerDatabaseDown(t *testing.T) {
	handler := NewHealthHandler(&stubRepository{err: errors.New("conexão recusada")})

	rec := getHealth(handler)

	require.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "error", response.Supabase)
}
