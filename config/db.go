package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"frontdesk-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// resolveSQLiteDSN prefers DB_PATH; without it the whole system lives in
// memory and is gone on restart, which is the intended mode.
func resolveSQLiteDSN() string {
	if path := strings.TrimSpace(os.Getenv("DB_PATH")); path != "" {
		return path
	}
	return "file::memory:?cache=shared"
}

func amenitiesJSON(items []string) datatypes.JSON {
	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("warning: failed to marshal amenities %v: %v", items, err)
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

// SeedRoomTypes populates the rate/capacity/amenity lookup table once.
func SeedRoomTypes(db *gorm.DB) {
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount > 0 {
		return
	}

	roomTypes := []models.RoomType{
		{
			TypeName:    models.RoomTypeStandard,
			Description: "Standard Room",
			Capacity:    2,
			NightlyRate: 17000,
			Amenities:   amenitiesJSON([]string{"TV", "Wi-Fi"}),
		},
		{
			TypeName:    models.RoomTypeDeluxe,
			Description: "Deluxe Room",
			Capacity:    2,
			NightlyRate: 26000,
			Amenities:   amenitiesJSON([]string{"TV", "Wi-Fi", "Mini-Bar"}),
		},
		{
			TypeName:    models.RoomTypeSuite,
			Description: "Suite Room",
			Capacity:    4,
			NightlyRate: 35000,
			Amenities:   amenitiesJSON([]string{"TV", "Wi-Fi", "Mini-Bar", "Kitchenette"}),
		},
		{
			TypeName:    models.RoomTypePresidential,
			Description: "Presidential Suite",
			Capacity:    6,
			NightlyRate: 50000,
			Amenities:   amenitiesJSON([]string{"TV", "Wi-Fi", "Mini-Bar", "Kitchenette", "Private Pool", "Butler Service"}),
		},
	}
	if err := db.Create(&roomTypes).Error; err != nil {
		log.Printf("warning: failed to seed room types: %v", err)
		return
	}
	log.Println("RoomTypes seeded")
}

func seedStaff(db *gorm.DB) {
	var staffCount int64
	db.Model(&models.StaffUser{}).Count(&staffCount)
	if staffCount > 0 {
		return
	}

	accounts := []struct {
		username string
		password string
		role     string
	}{
		{"manager1", "mgr123", models.RoleManager},
		{"frontdesk1", "fd123", models.RoleFrontDesk},
		{"housekeeping1", "hk123", models.RoleHousekeeping},
	}

	for _, acc := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash password for %s: %v", acc.username, err)
			continue
		}
		staff := models.StaffUser{
			Username: acc.username,
			Password: string(hash),
			Role:     acc.role,
		}
		if err := db.Create(&staff).Error; err != nil {
			log.Printf("warning: failed to create staff user %s: %v", acc.username, err)
		}
	}
	log.Println("Staff accounts seeded")
}

func seedAmenityStock(db *gorm.DB) {
	var count int64
	db.Model(&models.AmenityStock{}).Count(&count)
	if count > 0 {
		return
	}

	stock := []models.AmenityStock{
		{Name: "extra bed", Remaining: 5},
		{Name: "baby crib", Remaining: 3},
		{Name: "suite upgrade", Remaining: 2},
		{Name: "better view", Remaining: 4},
	}
	if err := db.Create(&stock).Error; err != nil {
		log.Printf("warning: failed to seed amenity stock: %v", err)
		return
	}
	log.Println("Amenity stock seeded")
}

// SeedDatabase ensures the fixed reference data exists: the room-type lookup
// table, the three staff accounts and the supplementary amenity pool. Rooms
// themselves are created by the room inventory (see services.RoomService).
func SeedDatabase(db *gorm.DB) {
	SeedRoomTypes(db)
	seedStaff(db)
	seedAmenityStock(db)
}

// MigrateAndSeed runs migrations and reference-data seeding on the given
// handle. Tests use this directly against their own in-memory DB.
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.StaffUser{},
		&models.RoomType{},
		&models.Room{},
		&models.RoomOccupancy{},
		&models.Guest{},
		&models.Reservation{},
		&models.AmenityStock{},
		&models.TaskLog{},
	); err != nil {
		return err
	}

	SeedDatabase(db)
	return nil
}

func ConnectDatabase() error {
	dsn := resolveSQLiteDSN()

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	// A shared in-memory sqlite DB only stays alive while at least one
	// connection holds it open; a single pooled connection guarantees that
	// and keeps every caller on the same database.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	} else {
		log.Printf("info: cannot get raw sql.DB: %v", err)
	}

	DB = db
	return MigrateAndSeed(db)
}
