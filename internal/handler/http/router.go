package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafflyhq/hrops-backend-go/internal/handler/http/middleware"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	requestHandler RequestHandler,
	leaveHandler LeaveHandler,
	notificationHandler NotificationHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrops-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/requests", func(r chi.Router) {
				r.Post("/leave", requestHandler.SubmitLeave)
				r.Post("/overtime", requestHandler.SubmitOvertime)
				r.Post("/missed-checkin", requestHandler.SubmitMissedCheckin)

				r.Get("/my", requestHandler.GetMyRequests)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", requestHandler.Get)
					r.Get("/approvals", requestHandler.AuditTrail)
					r.Post("/approve", requestHandler.Approve)
					r.Post("/reject", requestHandler.Reject)
					r.Post("/cancel", requestHandler.Cancel)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", leaveHandler.ListTypes)
				r.Get("/balances/my", leaveHandler.GetMyBalances)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Post("/mark-all-read", notificationHandler.MarkAllAsRead)
				r.Get("/stream", notificationHandler.Stream)
			})
		})
	})
	return r
}
