// Command image-grep reports where a small image occurs inside a larger one.
//
//	image-grep [flags] BIG SMALL
//	image-grep [flags] TR TG TB BIG SMALL
//
// The second, older form takes the red, green and blue tolerances
// positionally. Matches are printed as "x,y,x,y,..." on one line.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
