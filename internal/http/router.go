package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/handlers"
	httpMW "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/middleware"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/observability"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string
	// TracingService enables otelgin spans under this service name when set.
	TracingService string
	Metrics        *observability.Metrics

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler         *httpH.AuthHandler
	UserHandler         *httpH.UserHandler
	AnalyticsHandler    *httpH.AnalyticsHandler
	MoodHandler         *httpH.MoodHandler
	JournalHandler      *httpH.JournalHandler
	SelfCareHandler     *httpH.SelfCareHandler
	AppointmentHandler  *httpH.AppointmentHandler
	NotificationHandler *httpH.NotificationHandler
	SOSHandler          *httpH.SOSHandler
	SupportHandler      *httpH.SupportHandler
	AdminHandler        *httpH.AdminHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/users/register", cfg.AuthHandler.Register)
			api.POST("/users/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}

	admin := protected.Group("/")
	if cfg.AuthMiddleware != nil {
		admin.Use(cfg.AuthMiddleware.RequireAdmin())
	}

	// Users
	if cfg.UserHandler != nil {
		protected.GET("/me", cfg.UserHandler.GetMe)
		protected.GET("/users/:id", cfg.UserHandler.GetByID)
		protected.PUT("/users/profile-picture", cfg.UserHandler.UpdateProfilePicture)
	}

	// Analytics
	if cfg.AnalyticsHandler != nil {
		protected.GET("/analytics/summary", cfg.AnalyticsHandler.Summary)
		protected.GET("/analytics/day", cfg.AnalyticsHandler.Day)
	}

	// Wellness write paths
	if cfg.MoodHandler != nil {
		protected.POST("/moods", cfg.MoodHandler.Create)
		protected.GET("/moods", cfg.MoodHandler.List)
	}
	if cfg.JournalHandler != nil {
		protected.POST("/journal", cfg.JournalHandler.Create)
		protected.GET("/journal", cfg.JournalHandler.List)
	}
	if cfg.SelfCareHandler != nil {
		protected.POST("/selfcare/complete", cfg.SelfCareHandler.Complete)
		protected.GET("/selfcare/today", cfg.SelfCareHandler.Today)
	}

	// Appointments
	if cfg.AppointmentHandler != nil {
		protected.POST("/appointments/book", cfg.AppointmentHandler.Book)
		protected.GET("/appointments/my", cfg.AppointmentHandler.ListMine)
		protected.PUT("/appointments/:id/cancel", cfg.AppointmentHandler.Cancel)

		admin.GET("/appointments/admin/all", cfg.AppointmentHandler.ListAll)
		admin.PUT("/appointments/admin/:id/status", cfg.AppointmentHandler.SetStatus)
		admin.GET("/admin/appointments", cfg.AppointmentHandler.ListAll)
		admin.PATCH("/admin/appointments/:id/status", cfg.AppointmentHandler.SetStatus)
		admin.DELETE("/admin/appointments/:id", cfg.AppointmentHandler.Delete)
	}

	// Notifications
	if cfg.NotificationHandler != nil {
		protected.GET("/notifications", cfg.NotificationHandler.List)
		protected.POST("/notifications/mark-seen", cfg.NotificationHandler.MarkSeen)
		protected.POST("/notifications/:id/dismiss", cfg.NotificationHandler.Dismiss)
	}

	// SOS plan
	if cfg.SOSHandler != nil {
		protected.GET("/sos/my", cfg.SOSHandler.Get)
		protected.PUT("/sos", cfg.SOSHandler.Save)
		protected.DELETE("/sos", cfg.SOSHandler.Delete)
	}

	// Support directory
	if cfg.SupportHandler != nil {
		protected.GET("/support-persons", cfg.SupportHandler.List)
		admin.POST("/support-persons/seed", cfg.SupportHandler.Seed)
	}

	// Admin moderation
	if cfg.AdminHandler != nil {
		admin.GET("/admin/health", cfg.AdminHandler.Health)
		admin.GET("/admin/users", cfg.AdminHandler.ListUsers)
		admin.PATCH("/admin/users/:id/role", cfg.AdminHandler.SetRole)
		admin.DELETE("/admin/users/:id", cfg.AdminHandler.DeleteUser)
		admin.GET("/admin/journals", cfg.AdminHandler.ListJournals)
		admin.DELETE("/admin/journals/:id", cfg.AdminHandler.DeleteJournal)
		admin.GET("/admin/moods", cfg.AdminHandler.ListMoods)
		admin.DELETE("/admin/moods/:id", cfg.AdminHandler.DeleteMood)
		admin.POST("/admin/reminders/:pass/run", cfg.AdminHandler.RunReminders)
	}

	return r
}
