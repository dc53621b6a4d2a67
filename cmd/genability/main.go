// Command genability calls the Genability REST API from the shell and prints
// the reply envelopes as JSON.
//
// Usage:
//
//	genability account add --name "Home" --zip 94115 --tariff 521
//	genability price --tariff 521 --from 2025-01-01 --to 2025-01-02
//	genability upload --file usage.csv --format csv
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/icodeforyou/genability-go/config"
	"github.com/icodeforyou/genability-go/genability"
	"github.com/icodeforyou/genability-go/logging"
	"github.com/icodeforyou/genability-go/types"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"
)

var Version = "?.?.?"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	s := &session{}
	return &cli.App{
		Name:      "genability",
		Usage:     "Genability energy data API client",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a .properties or .yaml config file",
				EnvVars: []string{"GENABILITY_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "console log level (debug, info, warn, error), overrides config",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "print request metrics to stderr on exit",
			},
		},
		Commands: []*cli.Command{
			accountCommand(s),
			profileCommand(s),
			priceCommand(s),
			tariffCommand(s),
			propertyCommand(s),
			calendarCommand(s),
			uploadCommand(s),
		},
		After: func(c *cli.Context) error {
			return s.close(c)
		},
		// Exit codes are decided by main, not deep inside Run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// session is the state shared by the subcommands of one invocation. It is
// set up on first use so that --help works without credentials.
type session struct {
	cfg      *config.AppConfig
	client   *genability.Client
	registry *prometheus.Registry
	logFile  *os.File
}

func (s *session) open(c *cli.Context) error {
	if s.client != nil {
		return nil
	}
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.cfg = cfg

	consoleLevel := cfg.Logging.GetConsoleLevel()
	if c.IsSet("log-level") {
		str := c.String("log-level")
		consoleLevel = logging.LevelFromString(&str)
	}
	consoleHandler := tint.NewHandler(c.App.ErrWriter, &tint.Options{
		Level:      consoleLevel,
		TimeFormat: time.RFC3339,
	})
	var handler slog.Handler = consoleHandler
	if path := cfg.Logging.GetFile(); path != "" {
		fileHandler, f, err := logging.OpenFileHandler(path, cfg.Logging.GetFileLevel())
		if err != nil {
			return err
		}
		s.logFile = f
		handler = logging.NewMultiHandler(consoleHandler, fileHandler)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	opts := []genability.Option{
		genability.WithRestAPIServer(cfg.GetRestAPIServer()),
		genability.WithHTTPClient(&http.Client{Timeout: cfg.GetTimeout()}),
		genability.WithLogger(logger.With("module", "genability")),
	}
	if c.Bool("metrics") {
		s.registry = prometheus.NewRegistry()
		opts = append(opts, genability.WithMetrics(s.registry))
	}

	client, err := genability.New(cfg.AppID, cfg.AppKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	s.client = client
	logger.Debug("genability client is ready",
		slog.String("version", Version),
		slog.String("server", client.RestAPIServer()))
	return nil
}

func (s *session) close(c *cli.Context) error {
	var errs []error
	if s.registry != nil {
		families, err := s.registry.Gather()
		if err != nil {
			errs = append(errs, err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(c.App.ErrWriter, mf); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if s.logFile != nil {
		errs = append(errs, s.logFile.Close())
	}
	return errors.Join(errs...)
}

// call runs one API operation and prints its envelope. A non-success
// envelope is still printed, then reported through the exit code.
func call[T any](s *session, fn func(ctx context.Context, c *cli.Context, g *genability.Client) (*types.Response[T], error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := s.open(c); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		res, err := fn(ctx, c, s.client)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		if err := res.Err(); err != nil {
			return cli.Exit(err.Error(), 2)
		}
		return nil
	}
}
