package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/storelinehq/admin-gateway-go/internal/config"
	"github.com/storelinehq/admin-gateway-go/internal/domain/user"
	"github.com/storelinehq/admin-gateway-go/internal/handler/http/middleware"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	navigationHandler NavigationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "admin-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.DashboardURL},
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

			r.Get("/navigation", navigationHandler.Menu)

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRosterView))
					r.Get("/", attendanceHandler.List)
					r.Post("/search", attendanceHandler.Search)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceMark))
					r.Post("/{employeeID}/check-in", attendanceHandler.CheckIn)
					r.Post("/{employeeID}/check-out", attendanceHandler.CheckOut)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/daily", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
						Get("/", leaveHandler.ListDaily)
					r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).
						Post("/{requestID}/status", leaveHandler.UpdateDailyStatus)
				})

				// Monthly review is admin territory
				r.Route("/monthly", func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", leaveHandler.ListMonthly)
					r.Post("/{requestID}/review", leaveHandler.OpenReview)
					r.Post("/review/{sessionID}/dates/{day}/status", leaveHandler.SetReviewDateStatus)
					r.Delete("/review/{sessionID}", leaveHandler.CloseReview)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/branches", masterHandler.ListBranches)
			})
		})
	})
	return r
}
