package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
)

// tenRoomBands gives the occupancy report a round total to divide by.
func tenRoomBands() []services.RoomBand {
	return []services.RoomBand{
		{TypeName: models.RoomTypeStandard, StartNumber: 101, Count: 4},
		{TypeName: models.RoomTypeDeluxe, StartNumber: 201, Count: 3},
		{TypeName: models.RoomTypeSuite, StartNumber: 301, Count: 3},
	}
}

func newTenRoomEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	guests := services.NewGuestService(db)
	rooms := services.NewRoomService(db)
	require.NoError(t, rooms.InitializeRooms(tenRoomBands()))

	return &testEnv{
		db:           db,
		guests:       guests,
		rooms:        rooms,
		reservations: services.NewReservationService(db, guests, rooms),
		reports:      services.NewReportService(db),
	}
}

func TestOccupancyRateThreeOfTen(t *testing.T) {
	env := newTenRoomEnv(t)

	guests := []struct{ name, doc string }{
		{"Guest One", "A1"}, {"Guest Two", "A2"}, {"Guest Three", "A3"},
	}
	for _, g := range guests {
		registerTestGuest(t, env, g.name, g.doc)
		_, err := env.reservations.CheckIn(services.CheckInInput{
			Name: g.name, IDDocument: g.doc, TypeName: models.RoomTypeStandard,
		})
		require.NoError(t, err)
	}

	report, err := env.reports.Occupancy()
	require.NoError(t, err)
	assert.Equal(t, int64(10), report.TotalRooms)
	assert.Equal(t, int64(3), report.OccupiedRooms)
	assert.Equal(t, 30.00, report.OccupancyRate)
}

func TestOccupancyRateEmptyInventory(t *testing.T) {
	db := newTestDB(t)
	reports := services.NewReportService(db)

	report, err := reports.Occupancy()
	require.NoError(t, err)
	assert.Equal(t, int64(0), report.TotalRooms)
	assert.Equal(t, 0.0, report.OccupancyRate)
}

func TestRevenueProjectedAndRealized(t *testing.T) {
	env := newTestEnv(t)

	registerTestGuest(t, env, "Ana Gomez", "X1")
	registerTestGuest(t, env, "Ben Ortiz", "Y2")

	// One completed standard stay: realized 17000.
	done, err := env.reservations.CheckIn(services.CheckInInput{
		Name: "Ana Gomez", IDDocument: "X1", TypeName: models.RoomTypeStandard,
	})
	require.NoError(t, err)
	_, _, err = env.reservations.CheckOut(done.ReferenceID)
	require.NoError(t, err)

	// One still-occupied deluxe room: projected 26000, no realized revenue.
	_, err = env.reservations.CheckIn(services.CheckInInput{
		Name: "Ben Ortiz", IDDocument: "Y2", TypeName: models.RoomTypeDeluxe,
	})
	require.NoError(t, err)

	report, err := env.reports.Revenue()
	require.NoError(t, err)

	assert.Equal(t, 26000.0, report.ProjectedRevenue)
	assert.Equal(t, 17000.0, report.RealizedRevenue)
	assert.Equal(t, int64(1), report.CompletedCount)
	assert.Equal(t, int64(1), report.ActiveCount)
	assert.Equal(t, int64(2), report.TotalReservations)

	byType := map[string]services.RoomTypeUsage{}
	for _, u := range report.ByType {
		byType[u.TypeName] = u
	}
	assert.Equal(t, int64(1), byType[models.RoomTypeStandard].Reservations)
	assert.Equal(t, 17000.0, byType[models.RoomTypeStandard].RealizedRevenue)
	assert.Equal(t, 100.0, byType[models.RoomTypeStandard].RevenueShare)
	assert.Equal(t, int64(1), byType[models.RoomTypeDeluxe].Reservations)
	assert.Equal(t, 0.0, byType[models.RoomTypeDeluxe].RealizedRevenue)
}

func TestReportsDoNotMutateState(t *testing.T) {
	env := newTestEnv(t)
	registerTestGuest(t, env, "Ana Gomez", "X1")

	_, err := env.reservations.CheckIn(services.CheckInInput{
		Name: "Ana Gomez", IDDocument: "X1", TypeName: models.RoomTypeSuite,
	})
	require.NoError(t, err)

	_, err = env.reports.Occupancy()
	require.NoError(t, err)
	_, err = env.reports.Revenue()
	require.NoError(t, err)

	room, err := env.rooms.GetByNumber("301")
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusOccupied, room.Status)

	var reservations int64
	env.db.Model(&models.Reservation{}).Count(&reservations)
	assert.Equal(t, int64(1), reservations)
}
