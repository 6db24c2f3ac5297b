package main

import (
	"log"
	"os"

	"github.com/dmitrijs2005/ddnsup/internal/cli"
	"github.com/dmitrijs2005/ddnsup/internal/config"
	"github.com/dmitrijs2005/ddnsup/internal/logging"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	app := cli.NewApp(cfg, logger)

	os.Exit(app.Run(os.Args[1:]))

}
