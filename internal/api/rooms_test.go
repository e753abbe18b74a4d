package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IngridGit24/MeetingPlanner/internal/api"
	"github.com/IngridGit24/MeetingPlanner/internal/config"
	"github.com/IngridGit24/MeetingPlanner/internal/models"
	"github.com/IngridGit24/MeetingPlanner/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomHandler() (*api.RoomHandler, *memory.Repository) {
	repo := memory.NewRepository()
	return api.NewRoomHandler(repo, config.GetPlannerConfig()), repo
}

func TestCreateRoom(t *testing.T) {
	handler, repo := newRoomHandler()

	body := `{
		"name": "Salle Bleue",
		"capacity": 10,
		"available": false,
		"equipment": [
			{"name": "Main screen", "kind": "screen"},
			{"name": "Conference hub", "kind": "octopus_hub"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Room
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEmpty(t, created.ID, "an ID is minted when the client omits one")
	assert.Equal(t, "Salle Bleue", created.Name)

	// Creation defaults override the payload
	assert.True(t, created.Available)
	assert.Equal(t, 8, created.OpenTime.Hour())
	assert.Equal(t, 20, created.CloseTime.Hour())

	// Equipment is tied back to the room
	require.Len(t, created.Equipment, 2)
	for _, e := range created.Equipment {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, created.ID, e.RoomID)
	}

	stored, err := repo.GetRoom(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Equipment, 2)
}

func TestCreateRoomRejectsBadInput(t *testing.T) {
	handler, _ := newRoomHandler()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"name": `},
		{"negative capacity", `{"name": "X", "capacity": -1}`},
		{"unknown equipment kind", `{"name": "X", "equipment": [{"kind": "jukebox"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetRoom(t *testing.T) {
	handler, repo := newRoomHandler()
	ctx := context.Background()

	room := &models.Room{ID: "room1", Name: "Salle A", Available: true}
	require.NoError(t, repo.SaveRoom(ctx, room))

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/room1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Room
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Salle A", got.Name)

	// Unknown room is a 404
	req = httptest.NewRequest(http.MethodGet, "/api/rooms/ghost", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRooms(t *testing.T) {
	handler, repo := newRoomHandler()
	ctx := context.Background()

	require.NoError(t, repo.SaveRoom(ctx, &models.Room{ID: "room1", Name: "A"}))
	require.NoError(t, repo.SaveRoom(ctx, &models.Room{ID: "room2", Name: "B"}))

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rooms []models.Room
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rooms))
	assert.Len(t, rooms, 2)
}

func TestUpdateRoomReplacesEquipment(t *testing.T) {
	handler, repo := newRoomHandler()
	ctx := context.Background()

	room := &models.Room{
		ID:        "room1",
		Name:      "Salle A",
		Capacity:  6,
		Available: true,
		Equipment: []models.Equipment{
			{ID: "old1", Name: "Old screen", Kind: models.EquipmentScreen, RoomID: "room1"},
		},
	}
	require.NoError(t, repo.SaveRoom(ctx, room))

	body := `{
		"name": "Salle A bis",
		"capacity": 8,
		"available": true,
		"equipment": [{"name": "Whiteboard", "kind": "whiteboard"}]
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/rooms/room1", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := repo.GetRoom(ctx, "room1")
	require.NoError(t, err)
	assert.Equal(t, "Salle A bis", stored.Name)
	assert.Equal(t, 8, stored.Capacity)

	// The old equipment is gone, replaced by the submitted list
	require.Len(t, stored.Equipment, 1)
	assert.Equal(t, models.EquipmentWhiteboard, stored.Equipment[0].Kind)
	assert.Equal(t, "room1", stored.Equipment[0].RoomID)
}

func TestUpdateRoomNotFound(t *testing.T) {
	handler, _ := newRoomHandler()

	req := httptest.NewRequest(http.MethodPut, "/api/rooms/ghost", bytes.NewBufferString(`{"name":"X"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRoom(t *testing.T) {
	handler, repo := newRoomHandler()
	ctx := context.Background()

	room := &models.Room{
		ID:        "room1",
		Equipment: []models.Equipment{{ID: "e1", Kind: models.EquipmentScreen, RoomID: "room1"}},
	}
	require.NoError(t, repo.SaveRoom(ctx, room))

	req := httptest.NewRequest(http.MethodDelete, "/api/rooms/room1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	_, err := repo.GetRoom(ctx, "room1")
	assert.ErrorIs(t, err, memory.ErrNotFound)

	// Deleting again is a 404
	req = httptest.NewRequest(http.MethodDelete, "/api/rooms/room1", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
