package transit

import (
	"fmt"

	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"github.com/travigo/irishtransit/pkg/filter"
	"github.com/travigo/irishtransit/pkg/output"
	"github.com/urfave/cli/v2"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "output",
		Value: string(output.FormatJSON),
		Usage: "output format, one of json, pretty or csv",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: string(FormatRaw),
		Usage: "record format, raw or geojson",
	}
}

func whereFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "where",
		Usage: "expression records must satisfy, eg. 'location.latitude > 53.3'",
	}
}

func fieldFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "field",
		Usage: "path=value constraint, returns only the first matching record",
	}
}

func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "trains",
			Usage: "List the trains currently known to Irish Rail",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "status",
					Usage: "only trains with this status, running or not_running",
				},
				&cli.StringFlag{
					Name:  "code",
					Usage: "only the train with this code",
				},
				formatFlag(),
				whereFlag(),
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				result, err := newGlobalClient().ListTrains(c.Context, TrainsOptions{
					Status: c.String("status"),
					Code:   c.String("code"),
					Format: Format(c.String("format")),
					Where:  c.String("where"),
				})
				if err != nil {
					return err
				}

				return writeOutput(c, result.Value())
			},
		},
		{
			Name:  "movements",
			Usage: "List the movements of a train on a date",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "code",
					Usage:    "train code, eg. E109",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "date",
					Usage:    "train date as the provider writes it, eg. '21 Dec 2011'",
					Required: true,
				},
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				result, err := newGlobalClient().ListTrainMovements(c.Context, TrainMovementsOptions{
					Code: c.String("code"),
					Date: c.String("date"),
				})
				if err != nil {
					return err
				}

				return writeOutput(c, result.Value())
			},
		},
		{
			Name:  "stations",
			Usage: "List Irish Rail stations",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "type",
					Usage: "station type, one of A, M, S or D",
				},
				formatFlag(),
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				result, err := newGlobalClient().ListStations(c.Context, StationsOptions{
					Type:   c.String("type"),
					Format: Format(c.String("format")),
				})
				if err != nil {
					return err
				}

				return writeOutput(c, result.Value())
			},
		},
		{
			Name:  "bus-stops",
			Usage: "List Dublin bus stops",
			Flags: []cli.Flag{
				fieldFlag(),
				formatFlag(),
				whereFlag(),
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				fields, err := parseFieldFlag(c)
				if err != nil {
					return err
				}

				result, err := newGlobalClient().ListBusStops(c.Context, BusStopsOptions{
					Fields: fields,
					Format: Format(c.String("format")),
					Where:  c.String("where"),
				})
				if err != nil {
					return err
				}

				return writeOutput(c, result.Value())
			},
		},
		{
			Name:  "operators",
			Usage: "List Dublin bus operators",
			Flags: []cli.Flag{
				fieldFlag(),
				whereFlag(),
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				fields, err := parseFieldFlag(c)
				if err != nil {
					return err
				}

				result, err := newGlobalClient().ListOperators(c.Context, OperatorsOptions{
					Fields: fields,
					Where:  c.String("where"),
				})
				if err != nil {
					return err
				}

				return writeOutput(c, result.Value())
			},
		},
		{
			Name:  "overview",
			Usage: "Count the records every source currently provides",
			Flags: []cli.Flag{
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				overview, err := newGlobalClient().Overview(c.Context)
				if err != nil {
					return err
				}

				return writeOutput(c, overview)
			},
		},
	}
}

func newGlobalClient() *Client {
	return NewClient(&dataaggregator.GlobalAggregator)
}

func parseFieldFlag(c *cli.Context) (filter.Fields, error) {
	fields, err := filter.ParseArguments(c.StringSlice("field"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.InvalidArgumentError, err)
	}

	return fields, nil
}

func writeOutput(c *cli.Context, value any) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}

	return output.Write(c.App.Writer, format, value)
}
