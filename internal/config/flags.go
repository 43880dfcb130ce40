package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from flag.CommandLine.
//
// Flags:
//
//	-a web application address, e.g. http://localhost:5000
//	-request-timeout outbound request timeout (e.g., "30s"), 0 disables it
//	-poll-interval deals poll interval (e.g., "5m")
//	-headless print deals to stdout instead of running the terminal UI
//	-delete-note delete the note with this id, navigate to "/" and exit
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var httpAddress string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var headless bool
	var deleteNoteID string
	var jsonConfigPath string

	flag.StringVar(&httpAddress, "a", "", "Web application address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Deals poll interval (e.g., 5m)")
	flag.BoolVar(&headless, "headless", false, "Print deals to stdout instead of the terminal UI")
	flag.StringVar(&deleteNoteID, "delete-note", "", "Delete the note with this id and exit")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Headless:     headless,
			DeleteNoteID: deleteNoteID,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			DealsPollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
