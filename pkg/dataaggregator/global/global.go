package global

import (
	"github.com/travigo/irishtransit/pkg/config"
	"github.com/travigo/irishtransit/pkg/dataaggregator"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source/irishrail"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source/rtpi"
	"github.com/travigo/irishtransit/pkg/transport"
)

// Metrics is shared by every transport the hosts create so /metrics sees all upstream traffic
var Metrics = transport.NewMetrics()

// Config is the configuration the global aggregator was set up with, nil before Setup
var Config *config.Config

func Setup(cfg *config.Config) error {
	aggregator, err := NewAggregator(cfg)
	if err != nil {
		return err
	}

	dataaggregator.GlobalAggregator = *aggregator
	Config = cfg

	return nil
}

func NewAggregator(cfg *config.Config) (*dataaggregator.Aggregator, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	transportClient := transport.NewClient(timeout, cfg.UserAgent, Metrics)

	aggregator := &dataaggregator.Aggregator{}

	aggregator.RegisterSource(irishrail.Source{
		Endpoint:  cfg.IrishRailEndpoint,
		Transport: transportClient,
	})
	aggregator.RegisterSource(rtpi.Source{
		Endpoint:  cfg.RTPIEndpoint,
		Transport: transportClient,
	})

	return aggregator, nil
}
