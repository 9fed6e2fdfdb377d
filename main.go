// File: edunex/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edunex/config"
	"edunex/cron"
	"edunex/database"
	availabilityRepoPkg "edunex/database/repository/availability"
	courseRepoPkg "edunex/database/repository/course"
	enrollmentRepoPkg "edunex/database/repository/enrollment"
	notificationRepoPkg "edunex/database/repository/notification"
	sessionRepoPkg "edunex/database/repository/session"
	"edunex/handlers"
	"edunex/middleware"
	"edunex/routes"
	"edunex/services/consultation"
	"edunex/services/course"
	"edunex/services/tasks"
	"edunex/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSlotCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	sessRepo := sessionRepoPkg.NewMongoSessionRepo()
	crsRepo := courseRepoPkg.NewMongoCourseRepo()
	enrRepo := enrollmentRepoPkg.NewMongoEnrollmentRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	for name, ensure := range map[string]func() error{
		"availability": availRepo.EnsureIndexes,
		"sessions":     sessRepo.EnsureIndexes,
		"courses":      crsRepo.EnsureIndexes,
		"enrollments":  enrRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	consultationService := &consultation.DefaultConsultationService{
		AvailabilityRepo: availRepo,
		SessionRepo:      sessRepo,
		Tasks:            tasks.NewAsynqScheduler(),
		Cache:            utils.GetSlotCacheClient(),
		HorizonDays:      config.AppConfig.BookingHorizonDays,
	}
	courseService := &course.DefaultCourseService{
		CourseRepo:     crsRepo,
		EnrollmentRepo: enrRepo,
	}

	consultationHandler := handlers.NewConsultationHandler(consultationService, logger)
	courseHandler := handlers.NewCourseHandler(courseService, logger)
	notificationHandler := handlers.NewNotificationHandler(notifRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Consultation endpoints.
		GetAvailableSlots: consultationHandler.GetAvailableSlots,
		BookSession:       consultationHandler.BookSession,
		CancelSession:     consultationHandler.CancelSession,
		ListSessions:      consultationHandler.ListSessions,
		SetAvailability:   consultationHandler.SetAvailability,
		GetAvailability:   consultationHandler.GetAvailability,
		BlockDay:          consultationHandler.BlockDay,

		// Course endpoints.
		CreateCourse:   courseHandler.CreateCourse,
		ListCourses:    courseHandler.ListCourses,
		GetCourse:      courseHandler.GetCourse,
		AddLesson:      courseHandler.AddLesson,
		Enroll:         courseHandler.Enroll,
		GetProgress:    courseHandler.GetProgress,
		CompleteLesson: courseHandler.CompleteLesson,

		// Notification endpoints.
		ListNotifications:    notificationHandler.ListNotifications,
		MarkNotificationRead: notificationHandler.MarkNotificationRead,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for session reminders and completion.
	cron.InitSessionWorker(sessRepo, notifRepo)

	utils.StartHealthMonitor(utils.GetSlotCacheClient(), utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
