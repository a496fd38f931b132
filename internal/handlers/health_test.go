package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthHandler_Check(t *testing.T) {
	router, _, _, health := setupRouter(t)

	health.On("Ping", mock.Anything).Return(nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())
}

func TestHealthHandler_Check_DatabaseDown(t *testing.T) {
	router, _, _, health := setupRouter(t)

	health.On("Ping", mock.Anything).Return(errors.New("dial tcp: connection refused"))

	rec := doJSON(router, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
}

func TestRouter_SetsRequestID(t *testing.T) {
	router, _, _, health := setupRouter(t)

	health.On("Ping", mock.Anything).Return(nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/health", nil)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
