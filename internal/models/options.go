package models

// Options for the CLI.
type Options struct {
	Debug           bool   `doc:"Enable debug logging" short:"d" default:"false"`
	Host            string `doc:"Hostname to listen on" default:"localhost"`
	Port            int    `doc:"Port to listen on" short:"p" default:"8000"`
	Service         string `doc:"Service to run: sentiment, summarizer or marketplace" short:"s" default:"sentiment"`
	ShutdownTimeout int    `doc:"Seconds to wait for open requests on shutdown" default:"5"`
}
