package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hourlog/internal/config"
	"hourlog/internal/http/middleware"
	"hourlog/internal/model"
	"hourlog/internal/repository/memory"
	"hourlog/internal/service"
)

func TestNewRepository_Memory(t *testing.T) {
	cfg := &config.AppConfig{Storage: config.StorageConfig{Backend: config.BackendMemory}}

	repo, db, err := newRepository(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.IsType(t, &memory.HoursMemory{}, repo)
}

func TestNewRepository_Unknown(t *testing.T) {
	cfg := &config.AppConfig{Storage: config.StorageConfig{Backend: "sqlite"}}

	_, _, err := newRepository(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewApp_EndToEnd(t *testing.T) {
	var logs bytes.Buffer
	svc := service.NewHoursService(memory.NewHoursMemory(), nil)
	app, err := newApp(zerolog.New(&logs), prometheus.NewRegistry(), nil, svc)
	require.NoError(t, err)

	body := `{"employee":"employee","date":"2021-10-09","project":"project","story_id":null,"description":"description","hours":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/hours", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	var created model.Hours
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/hours/"+created.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/hours/"+created.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/hours/"+created.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/hours/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)

	assert.Contains(t, logs.String(), `"path":"/api/hours"`)
}

func TestNewApp_DuplicateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := service.NewHoursService(memory.NewHoursMemory(), nil)

	_, err := newApp(zerolog.Nop(), reg, nil, svc)
	require.NoError(t, err)
	_, err = newApp(zerolog.Nop(), reg, nil, svc)
	assert.Error(t, err)
}
