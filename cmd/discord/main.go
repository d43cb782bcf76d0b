package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emperror.dev/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/keshon/server-buddy/internal/apis"
	"github.com/keshon/server-buddy/internal/commands"
	"github.com/keshon/server-buddy/internal/config"
	"github.com/keshon/server-buddy/internal/discord"
	"github.com/keshon/server-buddy/internal/fetch"
	"github.com/keshon/server-buddy/internal/keepalive"
	"github.com/keshon/server-buddy/internal/logging"
	"github.com/keshon/server-buddy/internal/metrics"
	"github.com/keshon/server-buddy/internal/middleware"
	"github.com/keshon/server-buddy/internal/report"
	"github.com/keshon/server-buddy/internal/router"
	v "github.com/keshon/server-buddy/internal/version"
	"github.com/keshon/server-buddy/pkg/cmd"
	"github.com/keshon/server-buddy/pkg/jobmgr"
	"github.com/keshon/server-buddy/pkg/ratelimit"
)

func main() {
	app := &cli.App{
		Name:    "server-buddy",
		Usage:   v.AppDescription,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "dotenv files to load before reading the environment",
				Value:   cli.NewStringSlice(".env"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log at debug level",
				EnvVars: []string{"DEBUG"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.StringSlice("env-file")...)
	if err != nil {
		return err
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}

	zl, err := logging.New(cfg.Debug)
	if err != nil {
		return errors.WithMessage(err, "logger")
	}
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()
	log.Infof("Starting %s %s (built %s, %s)", v.AppName, v.Version, v.BuildDate, v.GoVersion)

	reporter, err := report.New(cfg.SentryDSN, v.Version)
	if err != nil {
		return err
	}
	defer reporter.Flush(2 * time.Second)
	if reporter.Enabled() {
		log.Info("Reporting command failures to sentry")
	}

	m := metrics.New()

	limit := rate.Limit(cfg.APIRate)
	limiter := ratelimit.NewAdaptiveLimiter(limit, limit/10, limit*2, limit/10, 0.5)
	fetcher := fetch.New(cfg.HTTPTimeout, log.Named("fetch"),
		fetch.WithLimiter(limiter),
		fetch.WithMetrics(m),
	)
	funAPIs := apis.New(fetcher, apis.Endpoints{
		Quote:    cfg.QuoteURL,
		DogImage: cfg.DogImageURL,
		DogFact:  cfg.DogFactURL,
		CatImage: cfg.CatURL,
	})

	registry := cmd.NewRegistry()
	if err := commands.Register(registry, commands.Deps{
		APIs:    funAPIs,
		ModRole: cfg.ModRole,
		Prefix:  cfg.Prefix,
		Log:     log.Named("commands"),
	}); err != nil {
		return err
	}

	bot, err := discord.New(cfg.DiscordToken, log.Named("discord"))
	if err != nil {
		return err
	}

	r := router.New(router.Options{
		Prefix:       cfg.Prefix,
		PresenceText: cfg.PresenceText,
		Registry:     registry,
		Platform:     bot.Platform(),
		Middlewares:  []cmd.Middleware{middleware.WithCommandLogger(log.Named("commands"), m)},
		Log:          log.Named("router"),
		Reporter:     reporter,
		Metrics:      m,
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := jobmgr.NewManager(jobReporter(log.Named("jobs")))
	if cfg.KeepAliveAddr != "" {
		srv := keepalive.New(cfg.KeepAliveAddr, r.State, m, log.Named("keepalive"))
		if err := jobs.Start(ctx, "keepalive", srv.Run); err != nil {
			return err
		}
	}
	if err := jobs.Start(ctx, "discord", func(ctx context.Context) error {
		return bot.Run(ctx, r)
	}); err != nil {
		return err
	}
	log.Info(jobs.Status())

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Interrupt signal received. Shutting down...")
	case runErr = <-jobs.Errors():
		log.Errorf("Shutting down after failure: %v", runErr)
	}

	jobs.StopAll()
	jobs.Wait()
	log.Infof("%s exited", v.AppName)
	return runErr
}

func jobReporter(log *zap.SugaredLogger) jobmgr.StatusReporter {
	return func(msg string) {
		log.Debug(msg)
	}
}
