package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"yumzy-backend/cmd/config"
	migration "yumzy-backend/cmd/database/migrate"
	"yumzy-backend/internal/metrics"
	"yumzy-backend/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on environment")
	}

	utils.LoadConfig()

	level, err := logrus.ParseLevel(utils.GetConfig("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	db, err := config.ConnectDB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	if err := migration.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	app, err := config.NewApp(db)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build app")
	}

	go metrics.Serve(":" + utils.GetConfig("METRICS_PORT"))

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
