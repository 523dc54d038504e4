package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/infrastructure/rest"
)

// La creación de sprints viaja por query params, no por cuerpo JSON, y toda
// petición autenticada lleva el bearer token.
func TestSprintCreate_QueryParamsYBearer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sprints", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "Sprint 2", q.Get("name"))
		assert.Equal(t, "2026-09-01", q.Get("startDate"))
		assert.Equal(t, "2026-09-15", q.Get("endDate"))
		assert.Equal(t, "3", q.Get("sprintBacklogId"))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.SprintResponse{ID: 11, Name: "Sprint 2"})
	}, "tok-abc")

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	out, err := rest.NewSprintClient(client).Create(context.Background(), "Sprint 2", start, end, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)
}

// Sin backlog asignado, el query param se omite por completo.
func TestSprintCreate_SinBacklogOmiteElParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["sprintBacklogId"]
		assert.False(t, present, "backlog cero no debe viajar en la URL")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.SprintResponse{ID: 12})
	}, "tok-abc")

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := rest.NewSprintClient(client).Create(context.Background(), "Sprint 3", start, start.AddDate(0, 0, 14), 0)
	require.NoError(t, err)
}

func TestSprintListActive_FechaEnQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/sprints/active", r.URL.Path)
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode([]dto.SprintResponse{{ID: 1, Name: "Sprint 1"}})
	}, "tok-abc")

	out, err := rest.NewSprintClient(client).ListActive(context.Background(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Sprint 1", out[0].Name)
}
