package services

import (
	"log"
	"time"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// ServiceRequestOptions is the closed set of room-service request types.
var ServiceRequestOptions = []string{
	"New sheets/towels",
	"Mini bar restock",
	"Cleaning",
	"Other",
}

// TaskService is the housekeeping side: the batch cleaning cycle, ad hoc
// service requests and the task log both feed.
type TaskService struct {
	DB    *gorm.DB
	Rooms *RoomService
}

func NewTaskService(db *gorm.DB, rooms *RoomService) *TaskService {
	return &TaskService{DB: db, Rooms: rooms}
}

// CleaningCycleResult summarizes one batch run.
type CleaningCycleResult struct {
	RoomsScheduled int       `json:"roomsScheduled"`
	RoomsReopened  int       `json:"roomsReopened"`
	BaseTime       time.Time `json:"baseTime"`
}

// RunCleaningCycle schedules a cleaning slot for every room at deterministic
// offsets (08:00 start, 20-minute intervals, room-number order) and returns
// Maintenance rooms to Available. Occupied rooms keep their status; only the
// log entry is written for them.
func (s *TaskService) RunCleaningCycle() (*CleaningCycleResult, error) {
	rooms, err := s.Rooms.GetAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	base := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location())

	result := &CleaningCycleResult{BaseTime: base}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i, room := range rooms {
			scheduled := base.Add(time.Duration(i) * 20 * time.Minute)
			entry := models.TaskLog{
				Kind:       models.TaskKindCleaning,
				RoomNumber: room.RoomNumber,
				LoggedAt:   scheduled,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			result.RoomsScheduled++

			if room.Status == models.RoomStatusMaintenance {
				res := tx.Model(&models.Room{}).
					Where("room_number = ? AND status = ?", room.RoomNumber, models.RoomStatusMaintenance).
					Update("status", models.RoomStatusAvailable)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected > 0 {
					result.RoomsReopened++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("cleaning cycle: %d rooms scheduled, %d reopened", result.RoomsScheduled, result.RoomsReopened)
	return result, nil
}

// CompleteCleaning closes out a single room's cleaning: Maintenance back to
// Available. Any other current status is a conflict.
func (s *TaskService) CompleteCleaning(roomNumber string) (*models.Room, error) {
	room, err := s.Rooms.GetByNumber(roomNumber)
	if err != nil {
		return nil, err
	}
	if room.Status != models.RoomStatusMaintenance {
		return nil, ErrStatusConflict
	}
	return s.Rooms.UpdateStatus(roomNumber, models.RoomStatusAvailable)
}

func validServiceRequest(requestType string) bool {
	for _, opt := range ServiceRequestOptions {
		if opt == requestType {
			return true
		}
	}
	return false
}

// LogServiceRequest records an ad hoc service request against a room. It is
// log-only: service requests do not drive the room state machine.
func (s *TaskService) LogServiceRequest(roomNumber, requestType string) (*models.TaskLog, error) {
	if !validServiceRequest(requestType) {
		return nil, ErrInvalidRequest
	}
	if _, err := s.Rooms.GetByNumber(roomNumber); err != nil {
		return nil, err
	}

	entry := models.TaskLog{
		Kind:        models.TaskKindService,
		RoomNumber:  roomNumber,
		RequestType: requestType,
		LoggedAt:    time.Now(),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// TaskLogs splits the log by kind, oldest first.
type TaskLogs struct {
	Cleaning []models.TaskLog `json:"cleaning"`
	Service  []models.TaskLog `json:"service"`
}

func (s *TaskService) Logs() (*TaskLogs, error) {
	logs := &TaskLogs{}
	if err := s.DB.Where("kind = ?", models.TaskKindCleaning).
		Order("id ASC").Find(&logs.Cleaning).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("kind = ?", models.TaskKindService).
		Order("id ASC").Find(&logs.Service).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
