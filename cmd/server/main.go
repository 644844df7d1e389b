package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/akosarev/notekeeper/internal/server"
	"github.com/akosarev/notekeeper/internal/server/config"
)

func main() {

	// a local .env is optional
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
