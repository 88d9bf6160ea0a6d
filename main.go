package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"github.com/xuning888/wstr/config"
	"github.com/xuning888/wstr/logger"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "wstr",
		Usage: "exercise the wstr dynamic string",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a config file `PATH`",
			},
		},
		Before: func(c *cli.Context) error {
			if path := c.String("config"); path != "" {
				if err := config.SetUpConfig(path); err != nil {
					return cli.Exit(err.Error(), 2)
				}
			}
			if err := logger.Configure(config.Current.LoggerConfiguration()); err != nil {
				return cli.Exit(err.Error(), 2)
			}
			return nil
		},
		Commands: []*cli.Command{
			checkCommand,
			repeatCommand,
			findCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.ErrorF("wstr: %v", err)
		os.Exit(1)
	}
}
