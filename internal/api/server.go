package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/internal/api/handler"
	"github.com/vfg2006/analytics-engine/internal/api/handler/router"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/usecases/aggregating"
	"github.com/vfg2006/analytics-engine/internal/usecases/authenticating"
	"github.com/vfg2006/analytics-engine/internal/usecases/cohorting"
	"github.com/vfg2006/analytics-engine/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-engine/internal/usecases/forecasting"
	"github.com/vfg2006/analytics-engine/internal/usecases/funneling"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"github.com/vfg2006/analytics-engine/internal/usecases/reporting"
	"github.com/vfg2006/analytics-engine/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services groups what the HTTP surface exposes.
type Services struct {
	Database      handler.Pinger
	Authenticator authenticating.TokenValidator
	Querier       querying.Querier
	Aggregator    aggregating.Aggregator
	Funneler      funneling.Funneler
	Cohorter      cohorting.Cohorter
	Forecaster    forecasting.Forecaster
	Reporter      reporting.Reporter
	Dashboarder   dashboarding.Dashboarder
	CronJobs      []handler.CronJob
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("an authenticator is required")
	}

	rt := NewRouter(services)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.App.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
		},
	}, nil
}

// NewRouter registers every route without the global middleware chain. A
// route group whose service is missing is left out, so its paths answer 404.
func NewRouter(services Services) router.Router {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.Database)...),
	}

	if services.Querier != nil {
		configs = append(configs, router.WithRoutes(handler.Query(services.Querier)...))
	}
	if services.Aggregator != nil {
		configs = append(configs, router.WithRoutes(handler.Summaries(services.Aggregator)...))
	}
	if services.Funneler != nil {
		configs = append(configs, router.WithRoutes(handler.Funnels(services.Funneler)...))
	}
	if services.Cohorter != nil {
		configs = append(configs, router.WithRoutes(handler.Cohorts(services.Cohorter)...))
	}
	if services.Forecaster != nil {
		configs = append(configs, router.WithRoutes(handler.Grants(services.Forecaster)...))
	}
	if services.Reporter != nil {
		configs = append(configs, router.WithRoutes(handler.Reports(services.Reporter)...))
	}
	if services.Dashboarder != nil {
		configs = append(configs, router.WithRoutes(handler.Dashboards(services.Dashboarder)...))
	}
	if len(services.CronJobs) > 0 {
		configs = append(configs, router.WithRoutes(handler.CronJobs(services.CronJobs)...))
	}

	return router.New(configs...)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error shutting down server")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
