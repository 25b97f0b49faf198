package main

import (
	"fmt"

	// Packages
	nwsapi "github.com/mutablelogic/go-nws/pkg/nwsapi"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AlertsCmd struct {
	State string `arg:"" help:"Two-letter US state code (e.g. CA, NY)"`
}

type ForecastCmd struct {
	Latitude  float64 `arg:"" help:"Latitude of the location"`
	Longitude float64 `arg:"" help:"Longitude of the location"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AlertsCmd) Run(g *Globals) error {
	client, err := nwsapi.New(g.clientOpts()...)
	if err != nil {
		return err
	}

	text, err := client.Alerts(g.ctx, cmd.State)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func (cmd *ForecastCmd) Run(g *Globals) error {
	client, err := nwsapi.New(g.clientOpts()...)
	if err != nil {
		return err
	}

	text, err := client.Forecast(g.ctx, cmd.Latitude, cmd.Longitude)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
