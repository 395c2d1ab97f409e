package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	scheduleHandler ScheduleHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-portal"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// The stream endpoint authenticates with its own short-lived token.
		r.Get("/events/stream", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/events/token", eventsHandler.GetStreamToken)

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/", attendanceHandler.Create)
				r.Get("/", attendanceHandler.List)
				r.Get("/statistics", attendanceHandler.Statistics)
				r.Post("/classify", attendanceHandler.Classify)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.ListMy)
				r.Get("/quotas", leaveHandler.QuotaSummary)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", leaveHandler.Get)
					r.Post("/approve", leaveHandler.Approve)
					r.Post("/reject", leaveHandler.Reject)
					r.Post("/cancel", leaveHandler.Cancel)
				})
			})

			r.Route("/work-shifts", func(r chi.Router) {
				r.Post("/", scheduleHandler.Create)
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.Get)
			})
		})
	})
	return r
}
