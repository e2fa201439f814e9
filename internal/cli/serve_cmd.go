package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clocked-app/clocked/internal/config"
	"github.com/clocked-app/clocked/internal/db"
	"github.com/clocked-app/clocked/internal/holiday"
	"github.com/clocked-app/clocked/internal/httpapi"
	"github.com/clocked-app/clocked/internal/logger"
	"github.com/clocked-app/clocked/internal/repository"
	"github.com/clocked-app/clocked/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env)
			defer func() { _ = log.Sync() }()

			database, err := db.OpenDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()

			users := repository.NewSQLiteUserRepo(database)
			entries := repository.NewSQLiteTimeEntryRepo(database)
			leaves := repository.NewSQLiteLeaveRepo(database)
			calendars := repository.NewSQLiteWorkCalendarRepo(database)
			uow := db.NewSQLiteUnitOfWork(database)
			clock := clockwork.NewRealClock()

			calendarSvc := service.NewCalendarService(calendars)
			handler := httpapi.New(
				log,
				users,
				service.NewTrackingService(entries, uow, clock),
				service.NewLeaveService(leaves),
				calendarSvc,
				service.NewStatsService(entries, leaves, calendarSvc, clock),
				service.NewHolidayService(holiday.NewCalendarProvider(), calendarSvc, clock),
			)

			srv := &http.Server{
				Addr:         cfg.HTTPAddr,
				Handler:      httpapi.Router(log, users, handler),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
				IdleTimeout:  cfg.IdleTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
