package services

import "errors"

// Domain error taxonomy. All of these are local, recoverable conditions the
// controllers translate to HTTP statuses; none are fatal to the process.
var (
	ErrDuplicateGuest      = errors.New("duplicate_guest")
	ErrGuestNotFound       = errors.New("guest_not_found")
	ErrNoRoomAvailable     = errors.New("no_room_available")
	ErrInvalidSelection    = errors.New("invalid_selection")
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrAlreadyCheckedOut   = errors.New("already_checked_out")
	ErrInvalidCredentials  = errors.New("invalid_credentials")

	ErrRoomNotFound      = errors.New("room_not_found")
	ErrRoomTypeNotFound  = errors.New("room_type_not_found")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidRequest    = errors.New("invalid_request")
	ErrStatusConflict    = errors.New("status_conflict")
)
