package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusressel/temp2go/internal/api"
	"github.com/markusressel/temp2go/internal/bridge"
	"github.com/markusressel/temp2go/internal/configuration"
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/markusressel/temp2go/internal/statistics"
	"github.com/markusressel/temp2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

var ErrNothingToServe = errors.New("nothing to serve, enable at least one of: api | statistics | profiling | mqtt")

// RunServer serves lookups over the enabled interfaces until the process receives SIGINT or SIGTERM.
func RunServer(config *configuration.Configuration, registry *sensors.Registry) error {
	if !config.Statistics.Enabled && !config.Profiling.Enabled && !config.Api.Enabled && !config.Mqtt.Enabled {
		return ErrNothingToServe
	}

	lookupCounter := statistics.NewLookupCounter()
	statistics.Register(lookupCounter)
	statistics.Register(statistics.NewRegistryCollector(registry))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		port := config.Statistics.Port
		if port <= 0 || port >= 65535 {
			port = 9000
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addHttpServer(&g, "statistics", &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux})
	}
	if config.Profiling.Enabled {
		// === pprof
		mux := http.NewServeMux()
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		addr := fmt.Sprintf("%s:%d", config.Profiling.Host, config.Profiling.Port)
		addHttpServer(&g, "profiling", &http.Server{Addr: addr, Handler: mux})
	}
	if config.Api.Enabled {
		// === REST API
		rest := api.CreateRestService(registry, lookupCounter, prometheus.DefaultRegisterer)
		addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)
		rest.Server.Addr = addr
		addHttpServer(&g, "api", rest.Server)
	}
	if config.Mqtt.Enabled {
		// === MQTT bridge
		mqttBridge := bridge.NewMqttBridge(config.Mqtt, registry, lookupCounter)
		g.Add(func() error {
			err := mqttBridge.Run(ctx)
			ui.Info("MQTT bridge stopped.")
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error in MQTT bridge: %v", err)
			}
			cancel()
		})
	}

	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	err := g.Run()
	if err == nil {
		ui.Info("Done.")
	}
	return err
}

func addHttpServer(g *run.Group, name string, server *http.Server) {
	g.Add(func() error {
		ui.Info("Starting %s server on %s", name, server.Addr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s server: %w", name, err)
	}, func(err error) {
		ui.Info("Stopping %s server...", name)
		timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer timeoutCancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			ui.Warning("Error stopping %s server: %v", name, err)
		}
	})
}
