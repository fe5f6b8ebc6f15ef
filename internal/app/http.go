package app

import (
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http"
	httpH "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/handlers"
	httpMW "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/middleware"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health       *httpH.HealthHandler
	Auth         *httpH.AuthHandler
	User         *httpH.UserHandler
	Analytics    *httpH.AnalyticsHandler
	Mood         *httpH.MoodHandler
	Journal      *httpH.JournalHandler
	SelfCare     *httpH.SelfCareHandler
	Appointment  *httpH.AppointmentHandler
	Notification *httpH.NotificationHandler
	SOS          *httpH.SOSHandler
	Support      *httpH.SupportHandler
	Admin        *httpH.AdminHandler
}

func wireHandlers(log *logger.Logger, clients Clients, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       httpH.NewHealthHandler(clients.Database),
		Auth:         httpH.NewAuthHandler(services.Auth),
		User:         httpH.NewUserHandler(services.User),
		Analytics:    httpH.NewAnalyticsHandler(services.Analytics),
		Mood:         httpH.NewMoodHandler(services.Mood),
		Journal:      httpH.NewJournalHandler(services.Journal),
		SelfCare:     httpH.NewSelfCareHandler(services.SelfCare),
		Appointment:  httpH.NewAppointmentHandler(services.Appointment),
		Notification: httpH.NewNotificationHandler(log, services.Notifier),
		SOS:          httpH.NewSOSHandler(services.SOS),
		Support:      httpH.NewSupportHandler(services.Support),
		Admin:        httpH.NewAdminHandler(services.Admin, services.Scheduler),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, clients Clients, handlers Handlers, middleware Middleware) *http.Server {
	tracing := ""
	if cfg.Otel.Enabled {
		tracing = cfg.Otel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:            log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TracingService: tracing,
		Metrics:        clients.Metrics,

		AuthMiddleware: middleware.Auth,

		AuthHandler:         handlers.Auth,
		UserHandler:         handlers.User,
		AnalyticsHandler:    handlers.Analytics,
		MoodHandler:         handlers.Mood,
		JournalHandler:      handlers.Journal,
		SelfCareHandler:     handlers.SelfCare,
		AppointmentHandler:  handlers.Appointment,
		NotificationHandler: handlers.Notification,
		SOSHandler:          handlers.SOS,
		SupportHandler:      handlers.Support,
		AdminHandler:        handlers.Admin,
		HealthHandler:       handlers.Health,
	})
}
