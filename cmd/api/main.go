package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"esuka/config"
	"esuka/middleware"
	"esuka/routes"
	"esuka/utils"
	"esuka/utils/events"
	"esuka/utils/fcm"
	"esuka/utils/mailer"
	"esuka/utils/metrics"
	"esuka/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.ConnectDB()
	appCfg := config.LoadAppConfig()
	m := metrics.New(prometheus.DefaultRegisterer)

	deps := routes.Deps{
		DB:      db,
		Tokens:  utils.NewTokenManager(config.LoadJWTConfig()),
		Metrics: m,
		App:     appCfg,
	}

	if storageCfg := config.LoadStorageConfig(); storageCfg.Enabled() {
		store, err := storage.NewS3Store(ctx, storageCfg)
		if err != nil {
			log.Fatalf("❌ S3 init failed: %v", err)
		}
		deps.Store = store
	} else {
		log.Println("⚠️ AWS_S3_BUCKET not set, file uploads are disabled")
	}

	if emailCfg := config.LoadEmailConfig(); emailCfg.Enabled() {
		deps.Mailer = mailer.NewClient(emailCfg)
	} else {
		log.Println("⚠️ SMTP_HOST not set, password reset links are only logged")
	}

	if notifCfg := config.LoadNotificationConfig(); notifCfg.FCMProjectID != "" {
		sender, err := fcm.NewFirebaseSender(ctx, notifCfg.FCMProjectID)
		if err != nil {
			log.Fatalf("❌ Firebase init failed: %v", err)
		}
		bus := events.NewBus(256)
		bus.OnDropped(m.RecordEventDropped)
		go fcm.NewNotifier(sender, m).StartNotifierConsumer(ctx, bus)
		deps.Bus = bus
	}

	app := fiber.New(fiber.Config{
		AppName:   "e-SuKa BAPPEDA",
		BodyLimit: 12 * 1024 * 1024,
	})
	app.Use(middleware.Recover())
	app.Use(middleware.Logger())
	app.Use(middleware.Cors(appCfg.CORSAllowOrigins))
	app.Use(middleware.Metrics(m))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	routes.Register(app, deps)

	go func() {
		<-ctx.Done()
		log.Println("🛑 Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Shutdown error: %v", err)
		}
	}()

	log.Printf("🚀 API running on :%s", appCfg.Port)
	if err := app.Listen(":" + appCfg.Port); err != nil {
		log.Fatal(err)
	}
}
