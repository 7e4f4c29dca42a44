package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dbsapi/dbsapi"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service dbsapi.SchoolService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel        string        `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"DBSAPI_LOG_LEVEL"`
	LogFormat       string        `help:"Log format" enum:"text,json" default:"text" env:"DBSAPI_LOG_FORMAT"`
	FetchTimeout    time.Duration `help:"Timeout for upstream fetches (0 disables)" default:"0s" env:"DBSAPI_FETCH_TIMEOUT"`
	UserAgent       string        `help:"User-Agent sent to the school website" env:"DBSAPI_USER_AGENT"`
	EventImageHosts []string      `name:"event-image-host" help:"Host /eventImages may fetch (repeatable; default any)" env:"DBSAPI_EVENT_IMAGE_HOSTS"`

	Serve  ServeCmd  `cmd:"" help:"Serve the JSON API"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape the website once and print JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Bind address" default:":5000" env:"DBSAPI_ADDR"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Target string `arg:"" enum:"birthdays,notices,competition-results,house-points,events,event-images,all" help:"What to scrape (birthdays, notices, competition-results, house-points, events, event-images, all)"`
	URL    string `arg:"" optional:"" help:"Event page URL, for event-images"`
}
