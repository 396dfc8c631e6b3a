package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"frontdesk-backend/config"
	"frontdesk-backend/services"
)

// newTestDB opens a fresh named in-memory database per test so tests never
// see each other's state, with migrations and reference data applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateAndSeed(db))
	return db
}

type testEnv struct {
	db           *gorm.DB
	guests       *services.GuestService
	rooms        *services.RoomService
	reservations *services.ReservationService
	tasks        *services.TaskService
	reports      *services.ReportService
	auth         *services.AuthService
}

// newTestEnv wires the full service graph over a fresh DB and the default
// nine-room inventory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	guests := services.NewGuestService(db)
	rooms := services.NewRoomService(db)

	require.NoError(t, rooms.InitializeRooms(services.DefaultRoomBands()))

	return &testEnv{
		db:           db,
		guests:       guests,
		rooms:        rooms,
		reservations: services.NewReservationService(db, guests, rooms),
		tasks:        services.NewTaskService(db, rooms),
		reports:      services.NewReportService(db),
		auth:         services.NewAuthService(db),
	}
}

func registerTestGuest(t *testing.T, env *testEnv, name, idDoc string) {
	t.Helper()
	_, err := env.guests.Register(services.RegisterGuestInput{
		FullName:   name,
		Age:        30,
		Gender:     "Female",
		Phone:      "555-0100",
		Email:      "guest@example.com",
		IDDocument: idDoc,
	})
	require.NoError(t, err)
}
