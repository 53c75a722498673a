package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Melanie472/f1laps/log"
	serverCmd "github.com/Melanie472/f1laps/pkg/cmd/server"
	showCmd "github.com/Melanie472/f1laps/pkg/cmd/show"
	"github.com/Melanie472/f1laps/pkg/cmd/util"
	"github.com/Melanie472/f1laps/pkg/config"
	"github.com/Melanie472/f1laps/version"
)

const envPrefix = "F1L"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "f1laps",
	Short:   "Lap time dashboard for Formula 1 races based on OpenF1 data",
	Long:    ``,
	Version: version.FullVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := util.SetupLogger()
		if err != nil {
			return err
		}
		log.ResetDefault(logger)
		cmd.SetContext(log.AddToContext(cmd.Context(), logger))
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.f1laps.yml)")

	rootCmd.PersistentFlags().StringVar(&config.APIURL, "api-url",
		config.DefaultAPIURL,
		"base URL of the OpenF1 API")
	rootCmd.PersistentFlags().IntVar(&config.Year, "year",
		config.DefaultYear,
		"season to load")
	rootCmd.PersistentFlags().StringVar(&config.SessionName, "session-name",
		config.DefaultSessionName,
		"session type to load")
	rootCmd.PersistentFlags().StringVar(&config.HTTPTimeout, "http-timeout",
		"30s",
		"timeout for a single API request")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"restricts log output, e.g. \"debug:openf1 info:*\"")

	// add commands here
	rootCmd.AddCommand(serverCmd.NewServerCmd())
	rootCmd.AddCommand(showCmd.NewShowCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".f1laps" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".f1laps")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
		for _, sub := range cmd.Commands() {
			bindFlags(sub, viper.GetViper())
		}
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --api-url to F1L_API_URL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
