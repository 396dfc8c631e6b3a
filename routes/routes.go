package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
	"frontdesk-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers behind the access gate. The role tags
// mirror the front-desk workflow: registration, rooms and the check-in/out
// ledger are front_desk work, statistics are manager-only, the cleaning
// cycle belongs to housekeeping. A manager passes every gate.
func SetupRouter(
	ac *controllers.AuthController,
	gc *controllers.GuestController,
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	repc *controllers.ReportController,
	tc *controllers.TaskController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/logout", middleware.RequireAuth(), ac.Logout)
		}

		frontDesk := api.Group("")
		frontDesk.Use(middleware.RequireAuth(), middleware.RequirePermission(models.RoleFrontDesk))
		{
			guests := frontDesk.Group("/guests")
			{
				guests.POST("", gc.RegisterGuest)
				guests.GET("", gc.GetGuests)
			}

			rooms := frontDesk.Group("/rooms")
			{
				rooms.GET("", rc.GetRooms)
				rooms.GET("/available", rc.GetAvailableRooms)
				rooms.PATCH("/:number/status", rc.UpdateRoomStatus)
			}

			amenities := frontDesk.Group("/amenities")
			{
				amenities.GET("", rc.GetAmenityStock)
				amenities.POST("/:name/allocate", rc.AllocateAmenity)
			}

			reservations := frontDesk.Group("/reservations")
			{
				reservations.POST("/checkin", resc.CheckIn)
				reservations.POST("/:ref/checkout", resc.CheckOut)
				reservations.GET("/active", resc.GetActive)
			}

			frontDesk.POST("/tasks/service", tc.CreateServiceRequest)
		}

		manager := api.Group("")
		manager.Use(middleware.RequireAuth(), middleware.RequirePermission(models.RoleManager))
		{
			manager.GET("/guests/statistics", gc.GetStatistics)

			reports := manager.Group("/reports")
			{
				reports.GET("/occupancy", repc.GetOccupancy)
				reports.GET("/revenue", repc.GetRevenue)
			}
		}

		housekeeping := api.Group("/tasks")
		housekeeping.Use(middleware.RequireAuth(), middleware.RequirePermission(models.RoleHousekeeping))
		{
			housekeeping.POST("/cleaning-cycle", tc.RunCleaningCycle)
			housekeeping.POST("/cleaning/:number/complete", tc.CompleteCleaning)
			housekeeping.GET("/logs", tc.GetLogs)
		}
	}

	return r
}
