package config

import (
	"flag"
	"os"
	"runtime"

	"github.com/filtergram/filtergram"
	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"
)

type Callback func() (logger *zap.Logger, isDebug bool)

type Setter func(fs *flag.FlagSet, cb Callback) filtergram.Option

// Do parses flags, env vars and optional .env config file into a Runner
func Do(args []string, setters ...Setter) *Runner {
	// base setters
	setters = append(setters, withCodec)

	var (
		fs      = flag.NewFlagSet("filtergram", flag.ExitOnError)
		logger  *zap.Logger
		err     error
		options []filtergram.Option

		debug        = fs.Bool("debug", false, "Debug mode")
		version      = fs.Bool("version", false, "Filtergram version")
		goMaxProcess = fs.Int("gomaxprocs", 0, "GOMAXPROCS")

		_ = fs.String("config", ".env", "Retrieve configuration from the given file")

		concurrency = fs.Int("concurrency", 0,
			"Maximum parallel jobs for batch runs. Defaults to the CPU count")
	)

	options = doSetters(fs, setters, func() (*zap.Logger, bool) {
		if err = ff.Parse(fs, args,
			ff.WithEnvVars(),
			ff.WithConfigFileFlag("config"),
			ff.WithIgnoreUndefined(true),
			ff.WithAllowMissingConfigFile(true),
			ff.WithConfigFileParser(ff.EnvParser),
		); err != nil {
			panic(err)
		}
		if *debug {
			if logger, err = zap.NewDevelopment(); err != nil {
				panic(err)
			}
		} else {
			if logger, err = zap.NewProduction(); err != nil {
				panic(err)
			}
		}
		return logger, *debug
	})

	if *goMaxProcess > 0 {
		logger.Debug("GOMAXPROCS", zap.Int("count", *goMaxProcess))
		runtime.GOMAXPROCS(*goMaxProcess)
	}

	return &Runner{
		App: filtergram.New(append(
			options,
			filtergram.WithConcurrency(*concurrency),
			filtergram.WithLogger(logger),
			filtergram.WithDebug(*debug),
		)...),
		Args:    fs.Args(),
		Version: *version,
		Logger:  logger,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

func doSetters(fs *flag.FlagSet, setters []Setter, cb Callback) (options []filtergram.Option) {
	var logger *zap.Logger
	var isDebug bool
	if len(setters) > 0 {
		var last = len(setters) - 1
		options = append(options, setters[last](fs, func() (*zap.Logger, bool) {
			options = append(options, doSetters(fs, setters[:last], cb)...)
			return logger, isDebug
		}))
		return
	}
	logger, isDebug = cb()
	return
}
