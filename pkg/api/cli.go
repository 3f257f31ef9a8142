package api

import (
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/global"
	"github.com/travigo/irishtransit/pkg/transit"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, defaults to the configured listen address",
					},
				},
				Action: func(c *cli.Context) error {
					listen := c.String("listen")
					if listen == "" && global.Config != nil {
						listen = global.Config.Listen
					}
					if listen == "" {
						listen = ":8080"
					}

					client := transit.NewClient(&dataaggregator.GlobalAggregator)

					return SetupServer(listen, client, global.Metrics)
				},
			},
		},
	}
}
