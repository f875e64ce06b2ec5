package main

import (
	"context"
	"log"
	"os"

	"github.com/dperalta/libris/internal/buildinfo"
	"github.com/dperalta/libris/internal/client/cli"
	"github.com/dperalta/libris/internal/client/config"
	"github.com/dperalta/libris/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
