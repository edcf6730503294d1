package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Env         string
	FrontendURL string
	LogLevel    slog.Level
	DisableLogs bool
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Payslip    PayslipHandler
	Project    ProjectHandler
	Dashboard  DashboardHandler
	Events     EventsHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	if opts.FrontendURL == "" {
		opts.FrontendURL = "http://localhost:3000"
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if !opts.DisableLogs {
		logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			ReplaceAttr: logFormat.ReplaceAttr,
		})).With(
			slog.String("app", "bizadmin"),
			slog.String("version", "v1.0.0"),
			slog.String("env", opts.Env),
		)
		r.Use(httplog.RequestLogger(logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// EventSource cannot set headers, so the stream also takes ?jwt=
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader, jwtauth.TokenFromQuery))
			r.Use(middleware.SessionRequired(JWTService))
			r.Get("/events", h.Events.Stream)
		})

		// Requires a session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.SessionRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Get("/session", h.Auth.Session)
			})

			r.Post("/create-attendance", h.Attendance.Create)
			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/summary", h.Attendance.Summary)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Post("/", h.Project.Create)
				r.Patch("/{id}/status", h.Project.UpdateStatus)
			})
			r.Route("/project/{id}", func(r chi.Router) {
				r.Get("/", h.Project.Get)
				r.Put("/", h.Project.Update)
				r.Delete("/", h.Project.Delete)
				r.Get("/progress", h.Project.Progress)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", h.Payslip.List)
				r.Post("/", h.Payslip.Create)
				r.Post("/calculate", h.Payslip.Calculate)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/deadlines", h.Dashboard.GetDeadlines)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
