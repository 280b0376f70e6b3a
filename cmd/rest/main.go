package main

import (
	"context"
	"log"

	"ticker-chat-be/internal/bootstrap"
	"ticker-chat-be/internal/config"
	"ticker-chat-be/internal/server"
	"ticker-chat-be/internal/tracer"
	"ticker-chat-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (read-only view over the ticker_news vector store).
	// With incomplete configuration the server still starts; /chat answers
	// with a Configuration Error until the operator fixes the environment.
	var gormDB *gorm.DB
	if missing := cfg.MissingDatabaseVars(); len(missing) > 0 {
		color.Yellow("⚠ Missing backing-store configuration: %v — /chat will return Configuration Error", missing)
	} else {
		var err error
		gormDB, err = database.NewGormDB(cfg.Database)
		if err != nil {
			log.Panicf("Unable to connect to Postgres: %v", err)
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.AuditConsumer.Consume(context.Background()); err != nil {
			log.Printf("Background Audit Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	color.Green("Ticker Chat backend (%s)", cfg.App.Environment)

	// 6. Run Server
	log.Fatal(srv.Run())
}
