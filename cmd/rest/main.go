package main

import (
	"context"
	"log"

	"hsms-be/internal/bootstrap"
	"hsms-be/internal/config"
	"hsms-be/internal/server"
	"hsms-be/internal/tracer"
	"hsms-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.DefaultPoolConfig())
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers share the process lifetime.
	ctx := context.Background()
	go func() {
		log.Println("Background: starting mail dispatcher...")
		if err := container.MailDispatcherService.Consume(ctx); err != nil {
			log.Printf("Background mail dispatcher error: %v", err)
		}
	}()
	container.CleanupService.Start(ctx)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
