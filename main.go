package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchdash/app"
	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))
	gin.SetMode(appConfig.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The dataset is loaded once; a bad source aborts startup
	loader := dataset.NewLoader(logger)
	ds, err := loader.Load(ctx, dataset.Source{
		FilePath:    appConfig.Data.File,
		Sheet:       appConfig.Data.Sheet,
		DatabaseURL: appConfig.Data.DatabaseURL,
		Table:       appConfig.Data.Table,
	})
	if err != nil {
		log.Fatalf("Failed to load launch records: %v", err)
	}

	dashboard := app.NewDashboardService(ds, app.SliderSettings{
		Min:  appConfig.Slider.Min,
		Max:  appConfig.Slider.Max,
		Step: appConfig.Slider.Step,
	}, logger)

	api := ui.NewServer(dashboard, logger)
	webApp, err := ui.NewApp(dashboard, api.Handler(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	servers := []*http.Server{{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           webApp.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if appConfig.Profiling.Enabled {
		// pprof registers on the default mux
		servers = append(servers, &http.Server{
			Addr:              ":" + appConfig.Profiling.Port,
			Handler:           http.DefaultServeMux,
			ReadHeaderTimeout: 10 * time.Second,
		})
		logger.Info("Profiling server on :%s (go tool pprof http://localhost:%s/debug/pprof/profile?seconds=30)",
			appConfig.Profiling.Port, appConfig.Profiling.Port)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		var firstErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	})

	logger.Info("Starting SpaceX launch dashboard on port %s (%d launches)", appConfig.Server.Port, ds.Len())
	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
