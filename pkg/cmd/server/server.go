package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/cmd/util"
	"github.com/Melanie472/f1laps/pkg/config"
	"github.com/Melanie472/f1laps/pkg/dashboard"
	"github.com/Melanie472/f1laps/pkg/dataset"
	"github.com/Melanie472/f1laps/pkg/ui/web"
	"github.com/Melanie472/f1laps/pkg/utils"
)

func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "starts the web dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&config.ServerAddr,
		"addr",
		"a",
		"localhost:8080",
		"listen address of the web dashboard")
	cmd.Flags().StringVar(&config.WaitForServices,
		"wait-for-services",
		"15s",
		"Duration to wait for the OpenF1 API to be reachable")
	cmd.Flags().StringVar(&config.CacheExpiration,
		"cache-expiration",
		"0s",
		"reload the data after this duration (0 keeps it for the process lifetime)")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"localhost:4317",
		"Endpoint that receives open telemetry data (\"stdout\" prints it)")
	return cmd
}

//nolint:funlen // by design
func startServer(ctx context.Context) error {
	var telemetry *config.Telemetry
	logger := log.GetFromContext(ctx).Named("server")

	logger.Debug("Config:",
		log.String("apiUrl", config.APIURL),
		log.Int("year", config.Year),
		log.String("sessionName", config.SessionName),
		log.String("addr", config.ServerAddr),
	)
	watchConfig(logger)

	if config.EnableTelemetry {
		logger.Info("Enabling telemetry")
		var err error
		if telemetry, err = config.SetupTelemetry(ctx); err != nil {
			logger.Warn("Could not setup telemetry", log.ErrorField(err))
		}
		err = otlpruntime.Start(otlpruntime.WithMinimumReadMemStatsInterval(time.Second))
		if err != nil {
			logger.Warn("Could not start runtime metrics", log.ErrorField(err))
		}
	}

	if err := utils.WaitForHTTPResponse(ctx, config.APIURL,
		util.ParseDuration(config.WaitForServices, 60*time.Second)); err != nil {
		logger.Error("OpenF1 API not reachable", log.ErrorField(err))
		return err
	}

	loader := util.NewLoader(
		dataset.WithExpiration(util.ParseDuration(config.CacheExpiration, 0)))
	dash := dashboard.New(loader, dashboard.WithTexts(true))
	handler := web.New(dash).Handler()

	//nolint:gosec // by design
	server := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      h2c.NewHandler(newCORS().Handler(handler), &http2.Server{}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // first request fetches the whole season
		IdleTimeout:  60 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting web server", log.String("addr", config.ServerAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server could not be started", log.ErrorField(err))
			return err
		}
	case v := <-sigChan:
		logger.Debug("Got signal ", log.Any("signal", v))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server shutdown", log.ErrorField(err))
	}
	if telemetry != nil {
		telemetry.Shutdown()
	}
	logger.Info("Server terminated")
	return nil
}

// watchConfig logs changes of the config file. Values are read at startup
// only, so a change requires a restart.
func watchConfig(logger *log.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Warn("config file changed, restart to apply",
			log.String("file", e.Name),
			log.String("op", e.Op.String()))
	})
	viper.WatchConfig()
}

func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowOriginFunc: func(origin string) bool {
			// Allow all origins, which effectively disables CORS.
			return true
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			"Accept",
			"Accept-Encoding",
			"Content-Encoding",
		},
		MaxAge: 7200, // 2 hours in seconds
	})
}
