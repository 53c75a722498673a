// Package util holds the setup steps shared by the commands.
package util

import (
	"os"
	"time"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/config"
	"github.com/Melanie472/f1laps/pkg/dataset"
	"github.com/Melanie472/f1laps/pkg/openf1"
)

func ParseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// ParseDuration returns defaultVal (with a warning) if value is not a valid duration.
func ParseDuration(value string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn("Invalid duration value. Using default",
			log.String("value", value),
			log.Duration("default", defaultVal),
			log.ErrorField(err))
		return defaultVal
	}
	return d
}

// SetupLogger creates the logger according to the log config values.
func SetupLogger() (*log.Logger, error) {
	opts := []log.Option{log.WithCaller(true), log.AddCallerSkip(1)}
	if config.LogFilter != "" {
		filter, err := log.WithFilterRules(config.LogFilter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, filter)
	}
	switch config.LogFormat {
	case "json":
		return log.New(
			os.Stderr,
			ParseLogLevel(config.LogLevel, log.InfoLevel),
			opts...), nil
	default:
		return log.DevLogger(
			os.Stderr,
			ParseLogLevel(config.LogLevel, log.DebugLevel),
			opts...), nil
	}
}

// NewClient creates the OpenF1 client according to the API config values.
func NewClient() *openf1.Client {
	return openf1.New(
		openf1.WithBaseURL(config.APIURL),
		openf1.WithTimeout(ParseDuration(config.HTTPTimeout, 30*time.Second)))
}

// NewLoader creates the dataset loader for the configured season and session type.
func NewLoader(opts ...dataset.LoaderOption) *dataset.Loader {
	opts = append([]dataset.LoaderOption{
		dataset.WithQuery(dataset.Query{
			Year:        config.Year,
			SessionName: config.SessionName,
		}),
	}, opts...)
	return dataset.NewLoader(NewClient(), opts...)
}
