package main

import (
	"context"
	"log"

	"github.com/wissalouarda6/data-warehouse-mining-project/app"
	"github.com/wissalouarda6/data-warehouse-mining-project/config"
)

func main() {
	// Load config from .env file
	cfg := config.LoadFromEnv()

	// Create and run the batch pipeline
	application := app.New(cfg)
	if err := application.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
