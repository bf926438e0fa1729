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
	"github.com/robfig/cron/v3"

	"hostel-backend/chat"
	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/routes"
	"hostel-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Redis is optional; the chat relay degrades to in-process presence
	config.InitializeRedis()

	// Initialize services
	bookingService := services.NewBookingService(db)
	membershipService := services.NewMembershipService(db)
	paymentService := services.NewPaymentService(db)

	// Chat relay
	hub := chat.NewHub(db, config.Redis)

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService)
	membershipController := controllers.NewMembershipController(membershipService)
	paymentController := controllers.NewPaymentController(paymentService)
	chatController := controllers.NewChatController(hub)

	// Daily sweep: expire past-due memberships and release room occupancy
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		n, err := membershipService.ExpireDue(time.Now().UTC())
		if err != nil {
			log.Printf("❌ membership expiry sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("✅ expired %d membership(s)", n)
		}
	}); err != nil {
		log.Fatalf("❌ failed to schedule expiry sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Build router
	router := routes.SetupRouter(bookingController, membershipController, paymentController, chatController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
