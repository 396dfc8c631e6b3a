package services

import (
	"errors"
	"log"
	"strconv"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomBand describes one contiguous numbered range of a single type, e.g.
// 101..103 Standard. Bands are data so alternate numbering schemes are just
// a different band list.
type RoomBand struct {
	TypeName    string
	StartNumber int
	Count       int
}

// DefaultRoomBands is the stock partition: three rooms per floor, one floor
// per type.
func DefaultRoomBands() []RoomBand {
	return []RoomBand{
		{TypeName: models.RoomTypeStandard, StartNumber: 101, Count: 3},
		{TypeName: models.RoomTypeDeluxe, StartNumber: 201, Count: 3},
		{TypeName: models.RoomTypeSuite, StartNumber: 301, Count: 3},
	}
}

// InitializeRooms creates the fixed room set plus its occupancy side-table
// rows. Deterministic and idempotent: an already-populated inventory is left
// untouched.
func (s *RoomService) InitializeRooms(bands []RoomBand) error {
	var count int64
	s.DB.Model(&models.Room{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, band := range bands {
		var roomType models.RoomType
		if err := s.DB.Where("type_name = ?", band.TypeName).First(&roomType).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return err
		}

		for i := 0; i < band.Count; i++ {
			number := strconv.Itoa(band.StartNumber + i)
			room := models.Room{
				RoomNumber: number,
				RoomTypeID: roomType.ID,
				Status:     models.RoomStatusAvailable,
			}
			if err := s.DB.Create(&room).Error; err != nil {
				return err
			}
			if err := s.DB.Create(&models.RoomOccupancy{RoomNumber: number}).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Room inventory initialized")
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").Where("room_number = ?", roomNumber).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindAvailableByType returns the preferred room if it is available and of
// the requested type, otherwise the first available room of that type in
// room-number order. First-fit only; there is no rotation policy.
func (s *RoomService) FindAvailableByType(typeName, preferredNumber string) (*models.Room, error) {
	var roomType models.RoomType
	if err := s.DB.Where("type_name = ?", typeName).First(&roomType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	if preferredNumber != "" {
		room, err := s.GetByNumber(preferredNumber)
		if err == nil && room.RoomTypeID == roomType.ID && s.isUnoccupied(room) {
			return room, nil
		}
		if err != nil && !errors.Is(err, ErrRoomNotFound) {
			return nil, err
		}
	}

	var room models.Room
	err := s.DB.Preload("RoomType").
		Joins("JOIN room_occupancies ON room_occupancies.room_number = rooms.room_number").
		Where("rooms.room_type_id = ? AND rooms.status = ? AND room_occupancies.occupied = ?",
			roomType.ID, models.RoomStatusAvailable, false).
		Order("rooms.room_number ASC").
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRoomAvailable
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) isUnoccupied(room *models.Room) bool {
	if room.Status != models.RoomStatusAvailable {
		return false
	}
	var occ models.RoomOccupancy
	if err := s.DB.Where("room_number = ?", room.RoomNumber).First(&occ).Error; err != nil {
		return false
	}
	return !occ.Occupied
}

// AvailableRoomsGroup is the check-in presentation: available room numbers
// grouped by type with the nightly rate alongside.
type AvailableRoomsGroup struct {
	TypeName    string   `json:"typeName"`
	NightlyRate float64  `json:"nightlyRate"`
	RoomNumbers []string `json:"roomNumbers"`
}

func (s *RoomService) ListAvailableGroupedByType() ([]AvailableRoomsGroup, error) {
	var roomTypes []models.RoomType
	if err := s.DB.Order("id ASC").Find(&roomTypes).Error; err != nil {
		return nil, err
	}

	groups := make([]AvailableRoomsGroup, 0, len(roomTypes))
	for _, rt := range roomTypes {
		var numbers []string
		err := s.DB.Model(&models.Room{}).
			Joins("JOIN room_occupancies ON room_occupancies.room_number = rooms.room_number").
			Where("rooms.room_type_id = ? AND rooms.status = ? AND room_occupancies.occupied = ?",
				rt.ID, models.RoomStatusAvailable, false).
			Order("rooms.room_number ASC").
			Pluck("rooms.room_number", &numbers).Error
		if err != nil {
			return nil, err
		}
		groups = append(groups, AvailableRoomsGroup{
			TypeName:    rt.TypeName,
			NightlyRate: rt.NightlyRate,
			RoomNumbers: numbers,
		})
	}
	return groups, nil
}

func validRoomStatus(status string) bool {
	switch status {
	case models.RoomStatusAvailable, models.RoomStatusOccupied,
		models.RoomStatusMaintenance, models.RoomStatusReserved:
		return true
	}
	return false
}

// UpdateStatus transitions a room's status with a compare-and-set on the
// current value, so two callers racing on the same room cannot both win.
// Transitioning to Available clears the occupant and stay dates.
func (s *RoomService) UpdateStatus(roomNumber, newStatus string) (*models.Room, error) {
	if !validRoomStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	room, err := s.GetByNumber(roomNumber)
	if err != nil {
		return nil, err
	}
	if room.Status == newStatus {
		return room, nil
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.RoomStatusAvailable {
		updates["current_guest_id"] = nil
		updates["check_in_date"] = nil
		updates["check_out_date"] = nil
	}

	res := s.DB.Model(&models.Room{}).
		Where("room_number = ? AND status = ?", roomNumber, room.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrStatusConflict
	}

	// Keep the occupancy side table consistent with manual transitions too;
	// the reservation ledger flips it on its own operations.
	switch newStatus {
	case models.RoomStatusAvailable:
		s.DB.Model(&models.RoomOccupancy{}).Where("room_number = ?", roomNumber).
			Update("occupied", false)
	case models.RoomStatusOccupied:
		s.DB.Model(&models.RoomOccupancy{}).Where("room_number = ?", roomNumber).
			Update("occupied", true)
	}

	return s.GetByNumber(roomNumber)
}

// AllocateAmenity decrements the named pool entry if any remain. The guard
// lives in the UPDATE itself so concurrent callers cannot drive the count
// below zero.
func (s *RoomService) AllocateAmenity(name string) (bool, error) {
	res := s.DB.Model(&models.AmenityStock{}).
		Where("name = ? AND remaining > 0", name).
		Update("remaining", gorm.Expr("remaining - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *RoomService) ListAmenityStock() ([]models.AmenityStock, error) {
	var stock []models.AmenityStock
	err := s.DB.Order("id ASC").Find(&stock).Error
	return stock, err
}

