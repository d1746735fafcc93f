package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/urfave/cli/v2"

	imgload "github.com/ironsheep/image-grep/internal/imaging"
	"github.com/ironsheep/image-grep/internal/render"
	"github.com/ironsheep/image-grep/internal/search"
)

// Exit codes.
const (
	exitUsage        = 1
	exitPatternLarge = 2
	exitFailure      = 3
)

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "image-grep"
	app.Usage = "find where a small image occurs inside a larger one"
	app.UsageText = "image-grep [flags] BIG SMALL\n   image-grep [flags] TR TG TB BIG SMALL"
	app.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "tolerance",
			Aliases: []string{"t"},
			EnvVars: []string{"IMAGE_GREP_TOLERANCE"},
			Usage:   "allowed difference on every color channel (0-255)",
		},
		&cli.IntFlag{
			Name:  "tr",
			Usage: "allowed red difference, overrides --tolerance",
		},
		&cli.IntFlag{
			Name:  "tg",
			Usage: "allowed green difference, overrides --tolerance",
		},
		&cli.IntFlag{
			Name:  "tb",
			Usage: "allowed blue difference, overrides --tolerance",
		},
		&cli.IntFlag{
			Name:    "threshold",
			Aliases: []string{"p"},
			EnvVars: []string{"IMAGE_GREP_THRESHOLD"},
			Usage:   "skip needle pixels whose brightness is within this of the last sampled one (0-765, 0 samples all)",
		},
		&cli.IntFlag{
			Name:    "max",
			Aliases: []string{"n"},
			EnvVars: []string{"IMAGE_GREP_MAX"},
			Usage:   "stop after this many matches (0 reports all)",
		},
		&cli.BoolFlag{
			Name:    "parallel",
			Aliases: []string{"P"},
			EnvVars: []string{"IMAGE_GREP_PARALLEL"},
			Usage:   "scan rows on all CPUs",
		},
		&cli.BoolFlag{
			Name:  "flush-edges",
			Usage: "also report needles touching the right or bottom edge",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			EnvVars: []string{"IMAGE_GREP_FORMAT"},
			Value:   string(render.FormatText),
			Usage:   "output format: text or json",
		},
		&cli.StringFlag{
			Name:  "highlight",
			Usage: "write a copy of BIG with the matches outlined to `FILE`",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = grep

	return app
}

// config is everything grep needs, parsed from the command line.
type config struct {
	bigPath   string
	smallPath string
	opts      search.Options
	format    render.Format
	highlight string
}

func parseConfig(c *cli.Context) (*config, error) {
	args := c.Args().Slice()
	if len(args) != 2 && len(args) != 5 {
		return nil, fmt.Errorf("expected BIG SMALL or TR TG TB BIG SMALL, got %d arguments", len(args))
	}

	all := c.Int("tolerance")
	tol := [3]int{all, all, all}
	for i, name := range []string{"tr", "tg", "tb"} {
		if c.IsSet(name) {
			tol[i] = c.Int(name)
		}
	}

	if len(args) == 5 {
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(args[i])
			if err != nil {
				return nil, fmt.Errorf("tolerance %q is not a number", args[i])
			}
			tol[i] = v
		}
		args = args[3:]
	}

	for i, v := range tol {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%s tolerance %d outside range 0-255", [3]string{"red", "green", "blue"}[i], v)
		}
	}

	format, err := render.ParseFormat(c.String("format"))
	if err != nil {
		return nil, err
	}

	opts := search.Options{
		Tolerance:        search.Tolerance{R: uint8(tol[0]), G: uint8(tol[1]), B: uint8(tol[2])},
		PatternThreshold: c.Int("threshold"),
		MaxMatches:       c.Int("max"),
		Parallel:         c.Bool("parallel"),
		FlushEdges:       c.Bool("flush-edges"),
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &config{
		bigPath:   args[0],
		smallPath: args[1],
		opts:      opts,
		format:    format,
		highlight: c.String("highlight"),
	}, nil
}

func grep(c *cli.Context) error {
	logger := log.New(io.Discard, "", log.Ldate|log.Ltime|log.Lshortfile)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	cfg, err := parseConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("image-grep: %v\nRun 'image-grep --help' for usage.", err), exitUsage)
	}

	cache := imgload.NewImageCache()
	big, err := cache.Raster(cfg.bigPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("image-grep: %v", err), exitFailure)
	}
	small, err := cache.Raster(cfg.smallPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("image-grep: %v", err), exitFailure)
	}
	logger.Printf("haystack %s: %dx%d", cfg.bigPath, big.Width(), big.Height())
	logger.Printf("needle %s: %dx%d", cfg.smallPath, small.Width(), small.Height())

	start := time.Now()
	res, err := search.Find(big, small, cfg.opts)
	if errors.Is(err, search.ErrPatternTooLarge) {
		return cli.Exit(fmt.Sprintf("image-grep: %v", err), exitPatternLarge)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("image-grep: %v", err), exitFailure)
	}
	logger.Printf("pattern: %d of %d needle pixels (threshold %d)",
		res.PatternSamples, small.Width()*small.Height(), cfg.opts.PatternThreshold)
	logger.Printf("scanned %d candidate windows, %d matches in %v (limit reached: %v)",
		res.Windows, res.Count, time.Since(start), res.LimitReached)

	if err := render.Write(c.App.Writer, res.Matches, cfg.format); err != nil {
		return cli.Exit(fmt.Sprintf("image-grep: %v", err), exitFailure)
	}

	if cfg.highlight != "" {
		col, _ := imgload.ParseColor(imgload.DefaultHighlightColor)
		out := imgload.DrawMatches(big.Image(), res.Matches, small.Width(), small.Height(), col, true)
		if err := imaging.Save(out, cfg.highlight); err != nil {
			return cli.Exit(fmt.Sprintf("image-grep: %v", err), exitFailure)
		}
		logger.Printf("wrote %s", cfg.highlight)
	}

	return nil
}
