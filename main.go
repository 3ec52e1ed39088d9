package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/stempel/stempel/internal/app"
)

// Set via ldflags for release builds.
var version = "development"

type commandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	Args struct {
		Workspace string `positional-arg-name:"workspace" description:"Path to the workspace directory holding the timesheet"`
	} `positional-args:"yes"`
}

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func main() {
	var opts commandLineOpts
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		// go-flags already printed its own diagnostic
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("stempel %s\n", version)
		os.Exit(0)
	}

	if opts.Args.Workspace == "" {
		fail(errors.New("workspace path not provided"))
	}

	application, err := app.NewApplication(opts.Args.Workspace)
	if err != nil {
		fail(err)
	}
	if err := application.Run(context.Background()); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
