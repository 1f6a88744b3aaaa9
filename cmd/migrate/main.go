package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-engine/infrastructure/migration"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-engine/pkg/log"
)

func main() {
	log.ConfigureFormatter()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}
	defer conn.Close()

	if err := migration.Apply(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Migration failed")
	}

	if !cfg.Migrate.SeedDashboards {
		logrus.Info("Dashboard seed disabled")
		return
	}

	dashboards := dashboarding.NewService(repository.NewDashboardRepository(conn))
	if _, _, err := migration.SeedDefaultDashboard(ctx, dashboards, cfg.Migrate.SeedOwnerID); err != nil {
		logrus.WithError(err).Fatal("Dashboard seed failed")
	}
}
