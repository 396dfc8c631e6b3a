package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"gorm.io/gorm"
)

// ReservationService owns the check-in/check-out ledger. It resolves guests
// through the registry and claims rooms through the inventory; rooms and
// guests know nothing about each other.
type ReservationService struct {
	DB     *gorm.DB
	Guests *GuestService
	Rooms  *RoomService
}

func NewReservationService(db *gorm.DB, guests *GuestService, rooms *RoomService) *ReservationService {
	return &ReservationService{DB: db, Guests: guests, Rooms: rooms}
}

// CheckInInput identifies the guest by the registry contract (name + ID
// document) and the room either explicitly by number or by requested type
// for first-fit assignment.
type CheckInInput struct {
	Name       string
	IDDocument string
	TypeName   string
	RoomNumber string
}

// CheckIn creates one reservation and marks the room occupied in the room
// table and the occupancy side table, all inside a single transaction. An
// unregistered guest is a hard precondition failure; an explicit selection
// of an unknown or occupied room fails without any mutation.
func (s *ReservationService) CheckIn(input CheckInInput) (*models.Reservation, error) {
	guest, err := s.Guests.Find(input.Name, input.IDDocument)
	if err != nil {
		return nil, err
	}

	var room *models.Room
	switch {
	case strings.TrimSpace(input.RoomNumber) != "":
		room, err = s.resolveExplicitSelection(input.RoomNumber, input.TypeName)
	case strings.TrimSpace(input.TypeName) != "":
		room, err = s.Rooms.FindAvailableByType(input.TypeName, "")
	default:
		return nil, ErrInvalidRequest
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var reservation models.Reservation

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Claim the room with a compare-and-set so the availability check
		// and the assignment are one atomic step.
		res := tx.Model(&models.Room{}).
			Where("room_number = ? AND status = ?", room.RoomNumber, models.RoomStatusAvailable).
			Updates(map[string]interface{}{
				"status":           models.RoomStatusOccupied,
				"current_guest_id": guest.ID,
				"check_in_date":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidSelection
		}

		res = tx.Model(&models.RoomOccupancy{}).
			Where("room_number = ? AND occupied = ?", room.RoomNumber, false).
			Update("occupied", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidSelection
		}

		// Short reference IDs can collide; the unique index catches it and
		// we retry with a fresh one.
		maxRetries := 5
		var createErr error
		for attempt := 0; attempt < maxRetries; attempt++ {
			reservation = models.Reservation{
				ReferenceID: utils.NewReservationReference(),
				GuestID:     guest.ID,
				RoomNumber:  room.RoomNumber,
				CheckInAt:   now,
			}
			createErr = tx.Create(&reservation).Error
			if createErr == nil {
				break
			}
			lc := strings.ToLower(createErr.Error())
			if strings.Contains(lc, "unique") || strings.Contains(lc, "duplicate") || strings.Contains(lc, "constraint") {
				log.Printf("reservation reference collision (attempt %d) - retrying", attempt+1)
				continue
			}
			return createErr
		}
		return createErr
	})
	if err != nil {
		return nil, err
	}

	reservation.Guest = *guest
	log.Printf("check-in: guest %s -> room %s (reservation %s)",
		guest.FullName, room.RoomNumber, reservation.ReferenceID)
	return &reservation, nil
}

func (s *ReservationService) resolveExplicitSelection(roomNumber, typeName string) (*models.Room, error) {
	room, err := s.Rooms.GetByNumber(strings.TrimSpace(roomNumber))
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil, ErrInvalidSelection
		}
		return nil, err
	}
	if typeName != "" && room.RoomType.TypeName != typeName {
		return nil, ErrInvalidSelection
	}
	if !s.Rooms.isUnoccupied(room) {
		return nil, ErrInvalidSelection
	}
	return room, nil
}

// Invoice is the checkout bill: at least one night, whole days plus one for
// any leftover seconds, priced at the type's nightly rate as it stands at
// checkout time.
type Invoice struct {
	ReservationID string    `json:"reservationId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	Nights        int       `json:"nights"`
	NightlyRate   float64   `json:"nightlyRate"`
	Total         float64   `json:"total"`
	CheckInAt     time.Time `json:"checkInAt"`
	CheckOutAt    time.Time `json:"checkOutAt"`
}

// ComputeNights counts whole 24-hour units between the two timestamps, adds
// one for any leftover of a second or more, and never bills below one night.
// Sub-second leftovers do not count.
func ComputeNights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	leftover := d - time.Duration(days)*24*time.Hour

	nights := days
	if leftover >= time.Second {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

// CheckOut completes the stay identified by its reference ID, frees the room
// for the next check-in and computes the invoice. Calling it again for the
// same reference reports the original checkout time and mutates nothing; the
// returned reservation carries that time alongside ErrAlreadyCheckedOut.
func (s *ReservationService) CheckOut(referenceID string) (*models.Reservation, *Invoice, error) {
	ref := utils.NormalizeReservationReference(referenceID)

	var reservation models.Reservation
	if err := s.DB.Preload("Guest").Where("reference_id = ?", ref).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrReservationNotFound
		}
		return nil, nil, err
	}

	if reservation.CheckOutAt != nil {
		return &reservation, nil, ErrAlreadyCheckedOut
	}

	now := time.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Reservation{}).
			Where("reference_id = ? AND check_out_at IS NULL", ref).
			Updates(map[string]interface{}{
				"check_out_at": now,
				"paid":         true,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyCheckedOut
		}

		// The room goes straight back to Available so the next check-in can
		// reuse it. Only an Occupied room is touched; a room a manager has
		// already flagged for maintenance stays flagged.
		if err := tx.Model(&models.Room{}).
			Where("room_number = ? AND status = ?", reservation.RoomNumber, models.RoomStatusOccupied).
			Updates(map[string]interface{}{
				"status":           models.RoomStatusAvailable,
				"current_guest_id": nil,
				"check_in_date":    nil,
				"check_out_date":   nil,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.RoomOccupancy{}).
			Where("room_number = ?", reservation.RoomNumber).
			Update("occupied", false).Error
	})
	if err != nil {
		return &reservation, nil, err
	}

	reservation.CheckOutAt = &now
	reservation.Paid = true

	invoice, err := s.buildInvoice(&reservation)
	if err != nil {
		return &reservation, nil, err
	}

	log.Printf("check-out: reservation %s, room %s, %d night(s), total %.0f",
		reservation.ReferenceID, invoice.RoomNumber, invoice.Nights, invoice.Total)
	return &reservation, invoice, nil
}

// buildInvoice looks the rate up from the room's current type record rather
// than a value frozen at check-in, so a rate-table change between check-in
// and check-out shows up in the bill.
func (s *ReservationService) buildInvoice(reservation *models.Reservation) (*Invoice, error) {
	room, err := s.Rooms.GetByNumber(reservation.RoomNumber)
	if err != nil {
		return nil, err
	}

	nights := ComputeNights(reservation.CheckInAt, *reservation.CheckOutAt)
	rate := room.RoomType.NightlyRate

	return &Invoice{
		ReservationID: reservation.ReferenceID,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType.TypeName,
		Nights:        nights,
		NightlyRate:   rate,
		Total:         float64(nights) * rate,
		CheckInAt:     reservation.CheckInAt,
		CheckOutAt:    *reservation.CheckOutAt,
	}, nil
}

// ListActive returns reservations without a checkout time in insertion
// order, so a guest who lost their reference ID can be helped. Read-only.
func (s *ReservationService) ListActive() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Guest").
		Where("check_out_at IS NULL").
		Order("id ASC").
		Find(&reservations).Error
	return reservations, err
}

// ListAll returns the full ledger, completed stays included, in insertion
// order. Reporting reads from this.
func (s *ReservationService) ListAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Guest").Order("id ASC").Find(&reservations).Error
	return reservations, err
}
