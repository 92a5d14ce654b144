package main

import (
	"context"
	"log"

	"github.com/aalmasoud/unilife/internal/app"
	"github.com/aalmasoud/unilife/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	a, err := app.NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	a.Run(context.Background())
}
