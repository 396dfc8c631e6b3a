package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
)

func TestInitializeRoomsDefaultBands(t *testing.T) {
	env := newTestEnv(t)

	rooms, err := env.rooms.GetAll()
	require.NoError(t, err)
	require.Len(t, rooms, 9)

	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, models.RoomTypeStandard, rooms[0].RoomType.TypeName)
	assert.Equal(t, 17000.0, rooms[0].RoomType.NightlyRate)
	assert.Equal(t, "301", rooms[6].RoomNumber)
	assert.Equal(t, models.RoomTypeSuite, rooms[6].RoomType.TypeName)

	for _, room := range rooms {
		assert.Equal(t, models.RoomStatusAvailable, room.Status)
		assert.Nil(t, room.CurrentGuestID)
	}

	var occRows int64
	env.db.Model(&models.RoomOccupancy{}).Count(&occRows)
	assert.Equal(t, int64(9), occRows)

	// Second call is a no-op on a populated inventory.
	require.NoError(t, env.rooms.InitializeRooms(services.DefaultRoomBands()))
	var count int64
	env.db.Model(&models.Room{}).Count(&count)
	assert.Equal(t, int64(9), count)
}

func TestFindAvailableByTypeFirstFit(t *testing.T) {
	env := newTestEnv(t)

	room, err := env.rooms.FindAvailableByType(models.RoomTypeDeluxe, "")
	require.NoError(t, err)
	assert.Equal(t, "201", room.RoomNumber, "first-fit picks the lowest room number")

	// A preference for a valid, available room of the right type wins.
	room, err = env.rooms.FindAvailableByType(models.RoomTypeDeluxe, "203")
	require.NoError(t, err)
	assert.Equal(t, "203", room.RoomNumber)

	// Preference for a room of the wrong type falls back to first-fit.
	room, err = env.rooms.FindAvailableByType(models.RoomTypeDeluxe, "101")
	require.NoError(t, err)
	assert.Equal(t, "201", room.RoomNumber)

	_, err = env.rooms.FindAvailableByType("Penthouse", "")
	assert.ErrorIs(t, err, services.ErrRoomTypeNotFound)
}

func TestFindAvailableSkipsOccupied(t *testing.T) {
	env := newTestEnv(t)
	registerTestGuest(t, env, "Ana Gomez", "X1")

	_, err := env.reservations.CheckIn(services.CheckInInput{
		Name: "Ana Gomez", IDDocument: "X1", RoomNumber: "101",
	})
	require.NoError(t, err)

	room, err := env.rooms.FindAvailableByType(models.RoomTypeStandard, "")
	require.NoError(t, err)
	assert.Equal(t, "102", room.RoomNumber)

	// Preferring the occupied room falls back to the scan too.
	room, err = env.rooms.FindAvailableByType(models.RoomTypeStandard, "101")
	require.NoError(t, err)
	assert.Equal(t, "102", room.RoomNumber)
}

func TestUpdateStatusTransitions(t *testing.T) {
	env := newTestEnv(t)

	room, err := env.rooms.UpdateStatus("101", models.RoomStatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, room.Status)

	room, err = env.rooms.UpdateStatus("101", models.RoomStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)
	assert.Nil(t, room.CurrentGuestID)
	assert.Nil(t, room.CheckInDate)

	_, err = env.rooms.UpdateStatus("101", "Demolished")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = env.rooms.UpdateStatus("999", models.RoomStatusMaintenance)
	assert.ErrorIs(t, err, services.ErrRoomNotFound)
}

func TestUpdateStatusToAvailableClearsOccupant(t *testing.T) {
	env := newTestEnv(t)
	registerTestGuest(t, env, "Ana Gomez", "X1")

	_, err := env.reservations.CheckIn(services.CheckInInput{
		Name: "Ana Gomez", IDDocument: "X1", RoomNumber: "101",
	})
	require.NoError(t, err)

	room, err := env.rooms.UpdateStatus("101", models.RoomStatusAvailable)
	require.NoError(t, err)
	assert.Nil(t, room.CurrentGuestID)
	assert.Nil(t, room.CheckInDate)

	var occ models.RoomOccupancy
	require.NoError(t, env.db.Where("room_number = ?", "101").First(&occ).Error)
	assert.False(t, occ.Occupied, "manual reopen syncs the side table")
}

func TestAllocateAmenityDrainsPool(t *testing.T) {
	env := newTestEnv(t)

	// "suite upgrade" is seeded with 2 units.
	for i := 0; i < 2; i++ {
		ok, err := env.rooms.AllocateAmenity("suite upgrade")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := env.rooms.AllocateAmenity("suite upgrade")
	require.NoError(t, err)
	assert.False(t, ok, "an exhausted pool rejects further allocations")

	ok, err = env.rooms.AllocateAmenity("rooftop pool")
	require.NoError(t, err)
	assert.False(t, ok, "unknown request names never allocate")

	var stock models.AmenityStock
	require.NoError(t, env.db.Where("name = ?", "suite upgrade").First(&stock).Error)
	assert.Equal(t, 0, stock.Remaining)
}

func TestListAvailableGroupedByType(t *testing.T) {
	env := newTestEnv(t)
	registerTestGuest(t, env, "Ana Gomez", "X1")

	_, err := env.reservations.CheckIn(services.CheckInInput{
		Name: "Ana Gomez", IDDocument: "X1", RoomNumber: "202",
	})
	require.NoError(t, err)

	groups, err := env.rooms.ListAvailableGroupedByType()
	require.NoError(t, err)
	require.Len(t, groups, 4)

	byType := map[string]services.AvailableRoomsGroup{}
	for _, g := range groups {
		byType[g.TypeName] = g
	}

	assert.Equal(t, []string{"101", "102", "103"}, byType[models.RoomTypeStandard].RoomNumbers)
	assert.Equal(t, []string{"201", "203"}, byType[models.RoomTypeDeluxe].RoomNumbers)
	assert.Equal(t, 26000.0, byType[models.RoomTypeDeluxe].NightlyRate)
	assert.Empty(t, byType[models.RoomTypePresidential].RoomNumbers)
}
