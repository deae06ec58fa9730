package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/leave-calendar-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(JWTService jwt.Service, calendarHandler CalendarHandler, approvalHandler ApprovalHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-calendar"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/months/{index}", calendarHandler.GetMonth)
				r.Post("/grid", calendarHandler.BuildGrid)
				r.Post("/day", calendarHandler.GetDayDetails)
				r.Get("/roster", calendarHandler.GetRoster)
			})

			r.Route("/approval", func(r chi.Router) {
				r.Get("/approvers", approvalHandler.ListApprovers)
				r.Post("/chain", approvalHandler.BuildChain)
			})
		})
	})

	return r
}
