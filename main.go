package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhub/config"
	"tutorhub/cron"
	"tutorhub/database"
	bookingRepoPkg "tutorhub/database/repository/booking"
	courseRepoPkg "tutorhub/database/repository/course"
	messageRepoPkg "tutorhub/database/repository/message"
	userRepoPkg "tutorhub/database/repository/user"
	"tutorhub/handlers"
	"tutorhub/routes"
	"tutorhub/services/admin"
	"tutorhub/services/booking"
	"tutorhub/services/course"
	"tutorhub/services/message"
	"tutorhub/services/notification"
	"tutorhub/services/storage"
	"tutorhub/services/tutor"
	"tutorhub/services/user"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	courseRepo := courseRepoPkg.NewMongoCourseRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	tutorService := &tutor.DefaultTutorService{Repo: userRepo}
	courseService := &course.DefaultCourseService{Repo: courseRepo, UserRepo: userRepo}

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		CourseRepo:  courseRepo,
		UserRepo:    userRepo,
		Notif:       notificationService,
		QueueClient: queueClient,
	}
	messageService := &message.DefaultMessageService{
		Repo:     messageRepo,
		UserRepo: userRepo,
		Notif:    notificationService,
	}
	adminService := &admin.DefaultAdminService{
		UserRepo:    userRepo,
		CourseRepo:  courseRepo,
		BookingRepo: bookingRepo,
	}

	// Background workers.
	cron.InitReminderWorker(notificationService)
	sweeper := cron.StartBookingSweeper(bookingRepo)
	defer sweeper.Stop()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetAuthCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	// HTTP server.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := handlers.NewHandlerBundle(
		userRepo,
		userService,
		tutorService,
		courseService,
		bookingService,
		messageService,
		adminService,
		storageService,
	)
	routes.RegisterRoutes(router, handlerBundle)

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
