package routes

import (
	"net/http"
	"time"

	"tutorhub/handlers"
	"tutorhub/middleware"
	"tutorhub/models"
	"tutorhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and password recovery.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.AuthenticateHandler)
		api.POST("/forgot-password", hb.User.ForgotPasswordHandler)
		api.POST("/reset-password", hb.User.ResetPasswordHandler)

		api.POST("/logout", middleware.JWTAuthMiddleware(hb.UserRepo), hb.User.LogoutHandler)
	}
}

// RegisterUserRoutes registers account self-management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetProfileHandler)
		api.PUT("/me", hb.User.UpdateProfileHandler)
		api.DELETE("/me", hb.User.DeleteAccountHandler)
		api.PUT("/me/password", hb.User.UpdatePasswordHandler)
	}
}

// RegisterTutorRoutes registers tutor profiles, availability and verification.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		// Public catalogue endpoints.
		api.GET("/:id", hb.Tutor.GetTutorHandler)
		api.GET("/:id/availability", hb.Tutor.GetAvailabilityHandler)
		api.GET("/:id/courses", hb.Course.ListByTutorHandler)

		// Tutor self-management.
		me := api.Group("/me")
		me.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleTutor))
		me.PUT("/profile", hb.Tutor.UpdateProfileHandler)
		me.PUT("/availability", hb.Tutor.SetAvailabilityHandler)
		me.POST("/verification", hb.Tutor.SubmitVerificationHandler)
		me.POST("/verification/documents", hb.Tutor.UploadVerificationDocHandler)
	}
}

// RegisterCourseRoutes registers the public catalogue and tutor listing management.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.GET("", hb.Course.SearchCoursesHandler)
		api.GET("/:id", hb.Course.GetCourseHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleTutor))
		protected.POST("", hb.Course.CreateCourseHandler)
		protected.PUT("/:id", hb.Course.UpdateCourseHandler)
		protected.DELETE("/:id", hb.Course.RemoveCourseHandler)
	}
}

// RegisterBookingRoutes registers quoting and the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/quote", hb.Booking.QuoteHandler)
		api.POST("", middleware.RequireRole(models.RoleStudent), hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListMyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("/:id/confirm", middleware.RequireRole(models.RoleTutor), hb.Booking.ConfirmBookingHandler)
		api.POST("/:id/complete", middleware.RequireRole(models.RoleTutor), hb.Booking.CompleteBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/:id/paid", middleware.RequireRole(models.RoleAdmin), hb.Booking.MarkPaidHandler)
	}
}

// RegisterMessageRoutes registers student/tutor messaging.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Message.SendMessageHandler)
		api.GET("/conversations", hb.Message.ListConversationsHandler)
		api.GET("/conversations/:id", hb.Message.ListMessagesHandler)
		api.POST("/conversations/:id/read", hb.Message.MarkReadHandler)
	}
}

// RegisterAdminRoutes registers platform administration endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		api.GET("/report", hb.Admin.PlatformReportHandler)
		api.GET("/verifications", hb.Admin.ListPendingVerificationsHandler)
		api.POST("/verifications/:id", hb.Admin.ReviewVerificationHandler)
		api.GET("/verifications/documents", hb.Admin.VerificationDocURLHandler)
		api.GET("/accounts", hb.Admin.ListAccountsHandler)
		api.POST("/accounts/:id/suspend", hb.Admin.SuspendAccountHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
