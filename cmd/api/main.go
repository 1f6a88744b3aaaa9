package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/infrastructure/integrator/mail"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/api"
	"github.com/vfg2006/analytics-engine/internal/api/handler"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/scheduler"
	"github.com/vfg2006/analytics-engine/internal/usecases/aggregating"
	"github.com/vfg2006/analytics-engine/internal/usecases/authenticating"
	"github.com/vfg2006/analytics-engine/internal/usecases/cohorting"
	"github.com/vfg2006/analytics-engine/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-engine/internal/usecases/forecasting"
	"github.com/vfg2006/analytics-engine/internal/usecases/funneling"
	"github.com/vfg2006/analytics-engine/internal/usecases/querying"
	"github.com/vfg2006/analytics-engine/internal/usecases/reporting"
	"github.com/vfg2006/analytics-engine/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	eventRepo := repository.NewEventRepository(pgConn, cfg.Query.MaxSessionEventRow)
	summaryRepo := repository.NewDailySummaryRepository(pgConn)
	funnelRepo := repository.NewFunnelDefinitionRepository(pgConn)
	cohortRepo := repository.NewCohortDefinitionRepository(pgConn)
	cohortMemberRepo := repository.NewCohortMemberRepository(pgConn)
	reportRepo := repository.NewScheduledReportRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)

	queryService := querying.NewService(eventRepo, cfg.Query)
	aggregateService := aggregating.NewService(eventRepo, summaryRepo, queryService, cfg.Rollup, cfg.Query)
	funnelService := funneling.NewService(funnelRepo, eventRepo, cfg.Query)
	cohortService := cohorting.NewService(cohortRepo, cohortMemberRepo, eventRepo)
	forecastService := forecasting.NewService(cfg.Grant)
	reportService := reporting.NewService(reportRepo, eventRepo, queryService, mail.New(cfg.Mail), cfg.Reports)
	dashboardService := dashboarding.NewService(dashboardRepo)

	dailyRollupService := scheduler.NewDailyRollupService(aggregateService, cfg.Rollup)
	scheduledReportsService := scheduler.NewScheduledReportsService(reportService, cfg.Reports)

	if err := dailyRollupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the daily rollup scheduler")
	} else {
		logrus.Info("Daily rollup scheduler started")
	}

	if err := scheduledReportsService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the scheduled reports scheduler")
	} else {
		logrus.Info("Scheduled reports scheduler started")
	}

	server, err := api.New(cfg, api.Services{
		Database:      pgConn,
		Authenticator: authenticator,
		Querier:       queryService,
		Aggregator:    aggregateService,
		Funneler:      funnelService,
		Cohorter:      cohortService,
		Forecaster:    forecastService,
		Reporter:      reportService,
		Dashboarder:   dashboardService,
		CronJobs:      []handler.CronJob{dailyRollupService, scheduledReportsService},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	log.ConfigureFormatter()
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
