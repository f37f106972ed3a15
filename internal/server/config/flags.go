package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/farmconnect/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   SQLite database path
//	-e string   environment name ("development" exposes error detail)
//	-w string   static assets directory
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-e", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "SQLite database path")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment name")
	fs.StringVar(&config.StaticDir, "w", config.StaticDir, "static assets directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
