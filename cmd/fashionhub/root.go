package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Bahjat/fashionhub-e2e/internal/browser"
	"github.com/Bahjat/fashionhub-e2e/internal/fashionhub"
	"github.com/Bahjat/fashionhub-e2e/internal/linkcheck"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/config"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/logger"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/runid"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	out     io.Writer
	logOut  io.Writer
	v       *viper.Viper
	cfgFile string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree. Reports go to out and structured logs
// to logOut.
func newRootCmd(out, logOut io.Writer) *cobra.Command {
	a := &app{out: out, logOut: logOut, v: config.NewViper()}

	root := &cobra.Command{
		Use:               "fashionhub",
		Short:             "End-to-end checks for the FashionHub demo shop",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "YAML config file; environment variables still win")
	flags.String("env", "", "target environment: local, stage or production (TEST_ENV)")
	flags.String("log-level", "", "DEBUG, INFO, WARN or ERROR (LOG_LEVEL)")
	_ = a.v.BindPFlag("test_env", flags.Lookup("env"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		a.linksCmd(),
		a.consoleCmd(),
		a.pullsCmd(),
		a.serveCmd(),
	)
	return root
}

// setup resolves configuration and logging, and tags the command context
// with a run ID.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Output:     a.logOut,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	id := runid.New()
	cmd.SetContext(runid.NewContext(ctx, id))

	a.logger.Info("fashionhub started", "command", cmd.Name(), "env", cfg.Env, "run_id", id)
	return nil
}

func (a *app) linkOptions() linkcheck.Options {
	return linkcheck.Options{
		Concurrency:       a.cfg.LinkCheck.Concurrency,
		Timeout:           a.cfg.LinkCheck.Timeout,
		RequestsPerSecond: a.cfg.LinkCheck.RequestsPerSecond,
	}
}

// httpEngine checks pages with plain HTTP, without a browser.
func (a *app) httpEngine() *linkcheck.Engine {
	lc := a.cfg.LinkCheck
	prober := linkcheck.NewHTTPProber(linkcheck.ProberOptions{
		Concurrency:  lc.Concurrency,
		Timeout:      lc.Timeout,
		BlockPrivate: lc.BlockPrivate,
	})
	validator := linkcheck.NewValidator(prober, a.linkOptions(), a.logger)
	return linkcheck.NewEngine(linkcheck.NewHTTPClient(lc.BlockPrivate), validator)
}

// openSite launches a browser and returns the site bound to it. The caller
// must close the session.
func (a *app) openSite() (*fashionhub.Site, *browser.Session, error) {
	b := a.cfg.Browser
	session, err := browser.Launch(browser.Options{
		Headless:     b.Headless,
		SlowMo:       b.SlowMo,
		Timeout:      b.Timeout,
		Preinstalled: b.Preinstalled,
	}, a.logger)
	if err != nil {
		return nil, nil, err
	}

	site := fashionhub.NewSite(session, a.cfg.Environment, a.linkOptions(), a.logger)
	site.ScreenshotDir = b.ScreenshotDir
	return site, session, nil
}

func (a *app) closeSession(s *browser.Session) {
	if err := s.Close(); err != nil {
		a.logger.Warn("browser close failed", "error", err)
	}
}

