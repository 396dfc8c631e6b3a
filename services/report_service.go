package services

import (
	"math"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// ReportService derives aggregate statistics from the other components'
// state. Every operation here is read-only.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type OccupancyReport struct {
	TotalRooms    int64   `json:"totalRooms"`
	OccupiedRooms int64   `json:"occupiedRooms"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// Occupancy reports occupied/total*100, rounded to two decimals.
func (s *ReportService) Occupancy() (*OccupancyReport, error) {
	report := &OccupancyReport{}
	if err := s.DB.Model(&models.Room{}).Count(&report.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomStatusOccupied).
		Count(&report.OccupiedRooms).Error; err != nil {
		return nil, err
	}
	if report.TotalRooms > 0 {
		rate := float64(report.OccupiedRooms) / float64(report.TotalRooms) * 100
		report.OccupancyRate = math.Round(rate*100) / 100
	}
	return report, nil
}

// RoomTypeUsage is the per-type slice of the revenue report.
type RoomTypeUsage struct {
	TypeName        string  `json:"typeName"`
	Reservations    int64   `json:"reservations"`
	RealizedRevenue float64 `json:"realizedRevenue"`
	RevenueShare    float64 `json:"revenueShare"`
}

type RevenueReport struct {
	ProjectedRevenue  float64         `json:"projectedRevenue"`
	RealizedRevenue   float64         `json:"realizedRevenue"`
	CompletedCount    int64           `json:"completedReservations"`
	ActiveCount       int64           `json:"activeReservations"`
	TotalReservations int64           `json:"totalReservations"`
	ByType            []RoomTypeUsage `json:"byType"`
}

// Revenue sums the nightly rate over currently occupied rooms (projected)
// and nights*rate over completed reservations (realized), with the same
// nights rule and live rate lookup the checkout invoice uses.
func (s *ReportService) Revenue() (*RevenueReport, error) {
	report := &RevenueReport{}

	row := s.DB.Model(&models.Room{}).
		Select("COALESCE(SUM(room_types.nightly_rate), 0)").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.status = ?", models.RoomStatusOccupied).
		Row()
	if err := row.Scan(&report.ProjectedRevenue); err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	if err := s.DB.Order("id ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}

	var roomTypes []models.RoomType
	if err := s.DB.Order("id ASC").Find(&roomTypes).Error; err != nil {
		return nil, err
	}

	// room number -> type, walked through the room table once.
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}
	typeByID := make(map[uint]models.RoomType, len(roomTypes))
	for _, rt := range roomTypes {
		typeByID[rt.ID] = rt
	}
	typeByRoom := make(map[string]models.RoomType, len(rooms))
	for _, r := range rooms {
		typeByRoom[r.RoomNumber] = typeByID[r.RoomTypeID]
	}

	usage := make(map[string]*RoomTypeUsage, len(roomTypes))
	for _, rt := range roomTypes {
		usage[rt.TypeName] = &RoomTypeUsage{TypeName: rt.TypeName}
	}

	report.TotalReservations = int64(len(reservations))
	for _, res := range reservations {
		rt, ok := typeByRoom[res.RoomNumber]
		if ok {
			usage[rt.TypeName].Reservations++
		}

		if res.CheckOutAt == nil {
			report.ActiveCount++
			continue
		}
		report.CompletedCount++

		if !ok {
			continue
		}
		nights := ComputeNights(res.CheckInAt, *res.CheckOutAt)
		revenue := float64(nights) * rt.NightlyRate
		report.RealizedRevenue += revenue
		usage[rt.TypeName].RealizedRevenue += revenue
	}

	report.ByType = make([]RoomTypeUsage, 0, len(roomTypes))
	for _, rt := range roomTypes {
		u := usage[rt.TypeName]
		if report.RealizedRevenue > 0 {
			u.RevenueShare = math.Round(u.RealizedRevenue/report.RealizedRevenue*10000) / 100
		}
		report.ByType = append(report.ByType, *u)
	}

	return report, nil
}
