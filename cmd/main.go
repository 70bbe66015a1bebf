package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ristorante-africa/ristorante/config"
	"github.com/ristorante-africa/ristorante/database"
	"github.com/ristorante-africa/ristorante/database/dbhelper"
	"github.com/ristorante-africa/ristorante/handlers"
	"github.com/ristorante-africa/ristorante/ledger"
	"github.com/ristorante-africa/ristorante/notifier"
	"github.com/ristorante-africa/ristorante/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	config.Init()

	if err := database.ConnectAndMigrate(); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	handlers.Ledger = ledger.New(dbhelper.NewReservationStore(), ledger.SystemClock(), ledger.Config{
		Capacity:       config.TotalCapacity,
		ExpiryGrace:    config.ExpiryGrace,
		CreationGrace:  config.CreationGrace,
		RetentionAfter: config.RetentionAfter,
	})
	handlers.Menu = dbhelper.NewMenuStore()
	handlers.Notify = notifier.NewDispatcher(
		notifier.NewSMSNotifier(config.TwilioAccountSID, config.TwilioAuthToken, config.TwilioFromNumber),
		notifier.NewEmailNotifier(config.ResendAPIKey, config.NotifyFromEmail, config.AdminEmail),
	)

	svr := server.SetupRoutes()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Printf("listening on :%s", config.Port)
		if err := svr.Run(":" + config.Port); err != nil && err != http.ErrServerClosed {
			logrus.Panicf("server stopped, error: %v", err)
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly!")
	}
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}
}
