package services

import (
	"errors"
	"log"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// RegisterGuestInput carries the raw registration fields. Coarse validation
// (numeric age, non-empty name) is the HTTP layer's job; the registry only
// enforces the non-empty name and the dedup invariant.
type RegisterGuestInput struct {
	FullName   string
	Age        int
	Gender     string
	Phone      string
	Email      string
	IDDocument string
}

// Register stores a new guest keyed by the derived identity. Two attempts
// with the same normalized name and document collapse to one identity and
// the second fails with ErrDuplicateGuest, leaving the registry unchanged.
func (s *GuestService) Register(input RegisterGuestInput) (*models.Guest, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, ErrInvalidRequest
	}

	identity := models.GuestIdentityKey(input.FullName, input.IDDocument)

	var existing int64
	s.DB.Model(&models.Guest{}).Where("identity_key = ?", identity).Count(&existing)
	if existing > 0 {
		return nil, ErrDuplicateGuest
	}

	guest := models.Guest{
		FullName:    input.FullName,
		Age:         input.Age,
		Gender:      input.Gender,
		Phone:       input.Phone,
		Email:       input.Email,
		IDDocument:  input.IDDocument,
		IdentityKey: identity,
	}

	if err := s.DB.Create(&guest).Error; err != nil {
		// The unique index is the backstop for the count check above.
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "unique") || strings.Contains(lc, "duplicate") {
			return nil, ErrDuplicateGuest
		}
		return nil, err
	}

	log.Printf("guest registered: %s (identity %s)", guest.FullName, identity)
	return &guest, nil
}

// Find resolves a guest by the same derived identity used at registration.
// Case-insensitive and whitespace-trimmed on both sides; this is the exact
// contract check-in relies on.
func (s *GuestService) Find(name, idDocument string) (*models.Guest, error) {
	identity := models.GuestIdentityKey(name, idDocument)

	var guest models.Guest
	if err := s.DB.Where("identity_key = ?", identity).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("id ASC").Find(&guests).Error
	return guests, err
}

// GuestStatistics is the demographic aggregation over all registered guests.
type GuestStatistics struct {
	Total        int64            `json:"total"`
	GenderCounts map[string]int64 `json:"genderCounts"`
	AgeGroups    map[string]int64 `json:"ageGroups"`
	AverageAge   float64          `json:"averageAge"`
}

const (
	genderMale   = "Male"
	genderFemale = "Female"
	genderOther  = "Other"
)

func genderBucket(g string) string {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "male":
		return genderMale
	case "female":
		return genderFemale
	default:
		return genderOther
	}
}

func ageGroup(age int) string {
	switch {
	case age < 18:
		return "<18"
	case age <= 30:
		return "18-30"
	case age <= 50:
		return "31-50"
	default:
		return "51+"
	}
}

// Statistics is a pure aggregation; it never mutates registry state.
func (s *GuestService) Statistics() (*GuestStatistics, error) {
	guests, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &GuestStatistics{
		Total: int64(len(guests)),
		GenderCounts: map[string]int64{
			genderMale:   0,
			genderFemale: 0,
			genderOther:  0,
		},
		AgeGroups: map[string]int64{
			"<18":   0,
			"18-30": 0,
			"31-50": 0,
			"51+":   0,
		},
	}

	ageSum := 0
	for _, g := range guests {
		stats.GenderCounts[genderBucket(g.Gender)]++
		stats.AgeGroups[ageGroup(g.Age)]++
		ageSum += g.Age
	}
	if len(guests) > 0 {
		stats.AverageAge = float64(ageSum) / float64(len(guests))
	}

	return stats, nil
}
