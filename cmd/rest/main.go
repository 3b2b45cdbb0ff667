package main

import (
	"context"
	"log"

	"github.com/tavor118/notes/internal/bootstrap"
	"github.com/tavor118/notes/internal/config"
	"github.com/tavor118/notes/internal/server"
	"github.com/tavor118/notes/internal/tracer"
	"github.com/tavor118/notes/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
