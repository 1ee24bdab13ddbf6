package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Philanthropists/parseint/internal/batch"
	"github.com/Philanthropists/parseint/internal/cache"
	"github.com/Philanthropists/parseint/internal/config"
	"github.com/Philanthropists/parseint/internal/logging"
	"github.com/Philanthropists/parseint/internal/render"
	"github.com/Philanthropists/parseint/pkg/intparse"
)

var GitCommit string

type options struct {
	ConfigPath string
	Workers    int
	Format     string
	Cache      bool
	Debug      bool
	Timeout    uint

	set map[string]bool
}

func parseOptions(args []string) (options, []string, error) {
	fs := flag.NewFlagSet("parseint", flag.ContinueOnError)

	var opts options
	fs.StringVar(&opts.ConfigPath, "config", config.DefaultFile, "path to the json config file")
	fs.IntVar(&opts.Workers, "workers", 0, "number of parsing goroutines, 0 means one per CPU")
	fs.StringVar(&opts.Format, "format", config.FormatText, "output format: text or json")
	fs.BoolVar(&opts.Cache, "cache", false, "memoize repeated inputs")
	fs.BoolVar(&opts.Debug, "debug", false, "output debug logs")
	fs.UintVar(&opts.Timeout, "timeout", 0, "seconds before parsing is cancelled")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, fs.Args(), nil
}

func getConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath, !opts.set["config"])
	if err != nil {
		return config.Config{}, err
	}

	if opts.set["workers"] {
		cfg.Workers = opts.Workers
	}
	if opts.set["format"] {
		cfg.Format = opts.Format
	}
	if opts.set["cache"] {
		cfg.Cache.Enabled = opts.Cache
	}

	return cfg, cfg.Validate()
}

func parseFunc(cfg config.Config) batch.ParseFunc {
	if !cfg.Cache.Enabled {
		return intparse.ParseInt
	}

	p := &cache.Parser{
		ExpirationTime:  time.Duration(cfg.Cache.Expiration),
		CleanupInterval: time.Duration(cfg.Cache.CleanupInterval),
	}

	return p.ParseInt
}

// run parses the positional args, or the lines of stdin when there are none,
// and writes one result per input to stdout.
func run(ctx context.Context, cfg config.Config, args []string, stdin io.Reader, stdout io.Writer) (batch.Summary, error) {
	var (
		inputs <-chan string
		errc   <-chan error
	)
	if len(args) > 0 {
		inputs = batch.Strings(ctx, args)
	} else {
		inputs, errc = batch.Lines(ctx, stdin)
	}

	items, summary, err := batch.Collect(ctx, batch.Parse(ctx, cfg.Workers, inputs, parseFunc(cfg)))
	if err != nil {
		return summary, err
	}

	if errc != nil {
		if err := <-errc; err != nil {
			return summary, err
		}
	}

	return summary, render.Write(stdout, cfg.Format, items)
}

func version() string {
	if len(GitCommit) >= 3 {
		return GitCommit[:3]
	}

	return "dev"
}

func main() {
	opts, args, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	zl, err := logging.Build(opts.Debug, zap.AddCallerSkip(1))
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	logging.SetCustomGlobalLogger(zl.With(zap.String("version", version())))
	logger := logging.New()

	cfg, err := getConfig(opts)
	if err != nil {
		logger.Fatal("invalid configuration", logging.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.Timeout != 0 {
		t := time.Duration(opts.Timeout) * time.Second
		nctx, cancel := context.WithTimeout(ctx, t)
		ctx = nctx
		defer cancel()
	}

	ctx = logger.GetContext(ctx)

	summary, err := run(ctx, cfg, args, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("failed to parse inputs", logging.Error(err))
	}

	logger.Info("parsed inputs",
		logging.Int("total", summary.Total),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
	)
	_ = logger.Sync()

	if summary.Failed > 0 {
		stop()
		os.Exit(1)
	}
}
