package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yigit/gradmap/internal/bootstrap"
	"github.com/yigit/gradmap/internal/pkg/logger"
	"github.com/yigit/gradmap/internal/server"
)

// @title gradmap API
// @version 1.0
// @description JSON API of the gradmap alumni directory

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8111
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name gradmap_session
// @description Session cookie set by POST /login

func main() {
	app := &cli.App{
		Name:      "gradmap",
		Usage:     "alumni directory web server",
		ArgsUsage: "[HOST PORT]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "path to the YAML config file",
				EnvVars: []string{"GRADMAP_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "run in debug mode (detailed errors, debug logging)",
			},
			&cli.BoolFlag{
				Name:  "threaded",
				Usage: "accepted for compatibility; requests are always served concurrently",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
	logger.Info().Msg("Application finished gracefully.")
}

func run(c *cli.Context) error {
	opts := bootstrap.Options{
		ConfigPath: c.String("config"),
		Debug:      c.Bool("debug"),
	}

	switch c.NArg() {
	case 0:
	case 2:
		opts.Host = c.Args().Get(0)
		opts.Port = c.Args().Get(1)
		if _, err := strconv.Atoi(opts.Port); err != nil {
			return cli.Exit(fmt.Sprintf("invalid port %q", opts.Port), 2)
		}
	default:
		return cli.Exit("expected no arguments or HOST PORT", 2)
	}

	srv, err := server.NewServer(context.Background(), opts)
	if err != nil {
		return err
	}
	return srv.Run()
}
