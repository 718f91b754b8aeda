package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cafeteria/internal/devserver"
	"cafeteria/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DATABASE_PATH", "cafeteria.db")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Database ---
	// Postgres when a DSN is configured, otherwise a local SQLite file.
	var (
		db  *gorm.DB
		err error
	)
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(viper.GetString("DATABASE_PATH")), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		// Drain the notification queue so published events are visible in
		// the operator log during development.
		go func() {
			log.Println("Starting RabbitMQ consumer for notifications...")
			if consumerErr := mqClient.ConsumeNotifications(rabbitmq.LogNotificationEvent); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Server ---
	server, err := devserver.New(db, jwtSecret, mqClient)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	app := server.App()

	log.Printf("Starting cafeteria backend simulator on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
