package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"frontdesk-backend/config"
	"frontdesk-backend/controllers"
	"frontdesk-backend/routes"
	"frontdesk-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (in-memory sqlite unless DB_PATH is set)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database ready, reference data seeded")

	// Initialize services
	guestService := services.NewGuestService(db)
	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db, guestService, roomService)
	reportService := services.NewReportService(db)
	taskService := services.NewTaskService(db, roomService)
	authService := services.NewAuthService(db)

	// Fixed room set, created once
	if err := roomService.InitializeRooms(services.DefaultRoomBands()); err != nil {
		log.Fatalf("room inventory initialization failed: %v", err)
	}

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	guestController := controllers.NewGuestController(guestService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	reportController := controllers.NewReportController(reportService)
	taskController := controllers.NewTaskController(taskService)

	// Build router
	router := routes.SetupRouter(
		authController,
		guestController,
		roomController,
		reservationController,
		reportController,
		taskController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
