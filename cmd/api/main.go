package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/bizadmin-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/bizadmin-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/bizadmin-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/bizadmin-backend-go/internal/service/dashboard"
	payslipService "github.com/cmlabs-hris/bizadmin-backend-go/internal/service/payslip"
	projectService "github.com/cmlabs-hris/bizadmin-backend-go/internal/service/project"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	withTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}
	location := cfg.App.Timezone

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)

	authService := serviceAuth.NewAuthService(serviceAuth.Admin{
		ID:           cfg.Admin.ID,
		Email:        cfg.Admin.Email,
		PasswordHash: cfg.Admin.PasswordHash,
	}, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	payslipSvc := payslipService.NewPayslipService(payslipRepo)
	projectSvc := projectService.NewProjectService(projectRepo, withTx, location, time.Now)

	changeFeed := dashboardService.NewChangeFeed(sse.NewHub(), time.Now)
	attendanceSvc = dashboardService.WithAttendanceFeed(attendanceSvc, changeFeed)
	payslipSvc = dashboardService.WithPayslipFeed(payslipSvc, changeFeed)
	projectSvc = dashboardService.WithProjectFeed(projectSvc, changeFeed)
	dashboardSvc := dashboardService.NewDashboardService(projectRepo, attendanceRepo, cfg.Dashboard.DeadlineLimit, location, time.Now)

	scheduler := cron.NewScheduler()
	if cfg.Dashboard.DigestEnabled {
		cron.NewDeadlineJobs(projectRepo, location, time.Now).RegisterJobs(scheduler)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Env:         cfg.App.Env,
		FrontendURL: cfg.App.FrontendURL,
		LogLevel:    cfg.SlogLevel(),
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payslip:    appHTTP.NewPayslipHandler(payslipSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Events:     appHTTP.NewEventsHandler(changeFeed),
	})

	server := newServer(ctx, fmt.Sprintf(":%d", cfg.App.Port), router)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
