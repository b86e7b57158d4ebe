package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/bootstrap"
	"github.com/urbanhive/urbanhive-client/internal/config"
	"github.com/urbanhive/urbanhive-client/internal/devserver"
	"github.com/urbanhive/urbanhive-client/internal/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "urbanhive-devserver",
		Usage: "run the in-memory backend and the discovery endpoint locally",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
				Usage:   "path to the configuration file",
				EnvVars: []string{"URBANHIVE_CONFIG"},
			},
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}

	srv := devserver.NewServer(devserver.Options{
		Port:           cfg.DevServer.Port,
		DiscoveryPort:  cfg.DevServer.DiscoveryPort,
		DiscoveryPath:  cfg.Discovery.Path,
		AdvertiseIP:    cfg.DevServer.AdvertiseIP,
		AllowedOrigins: cfg.DevServer.AllowedOrigins,
	}, lgr)

	if err := srv.Run(); err != nil {
		return err
	}

	lgr.Info().Msg("Development server finished gracefully.")
	return nil
}
