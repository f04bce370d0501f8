package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trm/internal/adapters"
	"trm/internal/adapters/cache"
	"trm/internal/adapters/httpclient"
	"trm/internal/api"
	"trm/internal/config"
	httpserver "trm/internal/platform/http"
	"trm/internal/rate"
	"trm/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Source client
	rateClient := httpclient.NewTRMClient(
		baseHTTPClient,
		appCfg.Source.BaseURL,
		httpclient.WithAppToken(appCfg.Source.AppToken),
		httpclient.WithMaxRangeRows(appCfg.Source.MaxRangeRows),
	)

	// Lookup cache
	var lookupCache adapters.LookupCache
	if appCfg.Cache.MaxItems > 0 {
		ristrettoCache, cacheErr := cache.NewLookupCache(appCfg.Cache.MaxItems, time.Duration(appCfg.Cache.TTLSec)*time.Second)
		if cacheErr != nil {
			logrus.WithError(cacheErr).Error("Failed to create lookup cache")
			return cacheErr
		}
		defer ristrettoCache.Close()
		lookupCache = ristrettoCache
		logrus.Info("✅ Lookup cache ready")
	}

	// Services
	store := rate.NewStore(rateClient, lookupCache, appCfg.Refresh.HistorySize)
	rateService := rate.NewService(store)
	rateValidator := rate.NewValidator()
	scheduler := rate.NewScheduler(
		store,
		time.Duration(appCfg.Refresh.IntervalSec)*time.Second,
		time.Duration(appCfg.Refresh.TimeoutSec)*time.Second,
	)
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// First refresh runs immediately on start
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateValidator, rateService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
