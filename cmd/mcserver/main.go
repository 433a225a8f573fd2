// Command mcserver runs the Minecraft 1.16.5 protocol server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mc754/server/internal/config"
	"github.com/mc754/server/internal/metrics"
	"github.com/mc754/server/internal/server"
)

func main() {
	var configPath string
	var listenAddr string
	var viewDistance int32
	var maxPlayers int32
	var metricsAddr string

	root := &cobra.Command{
		Use:   "mcserver",
		Short: "A from-scratch Minecraft 1.16.5 protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			if viewDistance != 0 {
				cfg.ViewDistance = viewDistance
			}
			if maxPlayers != 0 {
				cfg.MaxPlayers = maxPlayers
			}
			if metricsAddr != "" {
				cfg.MetricsAddr = metricsAddr
			}
			return run(cfg)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.Flags().StringVar(&listenAddr, "listen", "", "override the listen address (host:port)")
	root.Flags().Int32Var(&viewDistance, "view-distance", 0, "override the advertised view distance")
	root.Flags().Int32Var(&maxPlayers, "max-players", 0, "override the advertised max player count")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "override the Prometheus /metrics listen address")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	m := metrics.New()
	go func() {
		log.WithField("addr", cfg.MetricsAddr).Info("serving metrics")
		if err := serveMetrics(cfg.MetricsAddr, m); err != nil {
			log.WithError(err).Warn("metrics server stopped")
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(cfg, log, m)
	return srv.ListenAndServe(ctx)
}
