// Package commands implements the spert CLI's subcommand tree (§4.16):
// simulate, schedule, sensitivity, recommend, export csv, export json,
// and serve.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/spertscheduler/engine/config"
	"github.com/spertscheduler/engine/obslog"
)

// Version, Commit, and BuildDate are set at build time via ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	configPath string
	envPath    string
	verbose    bool

	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "spert",
	Short: "spert is a SPERT/Monte Carlo project-duration risk analysis engine",
	Long: `spert runs three-point-estimate Monte Carlo simulations over project
activities, derives deterministic schedules, ranks activities by
sensitivity, and recommends a distribution family per estimate.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		processCfg, err := config.LoadProcessConfig(envPath)
		if err == nil && processCfg.LogLevel != "" && !verbose {
			level = processCfg.LogLevel
		}

		logger, err = obslog.New(obslog.Options{Level: level, Component: "cli"})
		if err != nil {
			return err
		}
		log.Logger = logger

		logger.Info().Str("version", Version).Str("commit", Commit).Str("buildDate", BuildDate).Msg("spert starting")

		if configPath != "" {
			if _, err := config.LoadTOML(configPath); err != nil {
				return err
			}
			logger.Debug().Str("path", configPath).Msg("loaded scenario/calendar defaults")
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML defaults file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "path to a .env file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
