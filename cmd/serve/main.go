// Command serve loads the persisted iris model and serves the prediction
// API over HTTP until interrupted.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/irisml/irispredict/config"
	"github.com/irisml/irispredict/irismodel"
	"github.com/irisml/irispredict/pkg/log"
	"github.com/irisml/irispredict/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log.SetupLogger(cfg.Log.Level)
	gin.SetMode(gin.ReleaseMode)

	// The model is loaded once and shared read-only across all requests.
	m, err := irismodel.Load(cfg.Model.Path)
	if err != nil {
		slog.Error("failed to load model; run the train command first", log.ErrAttr(err), "path", cfg.Model.Path)
		os.Exit(1)
	}
	slog.Info("model loaded", "path", cfg.Model.Path, "features", m.FeatureNames, "classes", m.TargetNames)

	srv := server.NewServer(cfg.HTTP.Port, m)
	go func() {
		slog.Info("serving", "port", cfg.HTTP.Port)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", log.ErrAttr(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	if err := srv.Stop(); err != nil {
		slog.Error("server forced to shutdown", log.ErrAttr(err))
	}
}
