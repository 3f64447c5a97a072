package server

import (
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind     = "bind"
	flagDebug    = "debug"
	flagLogLevel = "log_level"
	flagDB       = "db"
	flagAudit    = "audit"
	flagMetrics  = "metrics"
)

// parseFlags applies the start flags on top of the given config. Only flags
// present in args change a value.
func parseFlags(conf Config, args []string) (Config, error) {
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&conf.Bind, flagBind, conf.Bind, "address server listens on")
	startFlags.BoolVar(&conf.Debug, flagDebug, conf.Debug, "call stack returned on error")
	startFlags.StringVar(&conf.LogLevel, flagLogLevel, conf.LogLevel, "debug, info, error or none")
	startFlags.StringVar(&conf.DBPath, flagDB, conf.DBPath, "state database path, empty keeps state in memory")
	startFlags.StringVar(&conf.AuditPath, flagAudit, conf.AuditPath, "event journal path, empty disables it")
	startFlags.StringVar(&conf.MetricsBind, flagMetrics, conf.MetricsBind, "prometheus listen address, empty disables it")
	if err := startFlags.Parse(args); err != nil {
		return conf, errors.Wrap(errors.ErrInput, err.Error())
	}
	return conf, nil
}

// filterLogger limits the logger output to the configured level.
func filterLogger(logger log.Logger, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, opt), nil
}

// AppGenerator lets us lazily initialize app, using the final config and
// a logger potentially initialized with other flags. Metrics must be
// registered with the given registerer to be served.
//
// When the application implements io.Closer it is closed on shutdown.
type AppGenerator func(Config, log.Logger, prometheus.Registerer) (abci.Application, error)

// StartCmd initializes the application and serves it over the ABCI socket
// until the process is interrupted.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	conf, err := LoadConfig(home)
	if err != nil {
		return err
	}
	if conf, err = parseFlags(conf, args); err != nil {
		return err
	}
	if logger, err = filterLogger(logger, conf.LogLevel); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	app, err := gen(conf, logger, reg)
	if err != nil {
		return err
	}
	if c, ok := app.(io.Closer); ok {
		defer c.Close()
	}

	if conf.MetricsBind != "" {
		msrv := &http.Server{Addr: conf.MetricsBind, Handler: metrics.Handler(reg)}
		go func() {
			if err := msrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", "err", err)
			}
		}()
		defer msrv.Close()
		logger.Info("Serving metrics", "bind", conf.MetricsBind)
	}

	logger.Info("Starting ABCI app", "bind", conf.Bind)
	svr, err := server.NewServer(conf.Bind, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrNetwork, "creating listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrNetwork, "starting server: %s", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	logger.Info("Shutting down", "signal", s.String())
	return svr.Stop()
}
