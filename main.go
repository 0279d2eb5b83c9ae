package main

import (
	"os"

	"github.com/tkarvine/motiontidy/cmd"
	"github.com/tkarvine/motiontidy/internal/buildinfo"
	"github.com/tkarvine/motiontidy/internal/conf"
	"github.com/tkarvine/motiontidy/internal/logging"
)

// populated at link time via -ldflags
var (
	version   = "dev"
	buildDate = ""
)

func main() {
	// Set up the logging system before anything else logs.
	logging.Init()

	// Load the application configuration.
	settings, err := conf.Load()
	if err != nil {
		logging.Fatal("error loading configuration", "error", err)
	}

	rootCmd := cmd.RootCommand(settings, buildinfo.NewContext(version, buildDate))
	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
