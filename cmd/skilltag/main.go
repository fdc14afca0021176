package main

import (
	"os"
	"strings"

	"github.com/labex-labs/skilltag/pkg/config"
	"github.com/labex-labs/skilltag/pkg/logger"
	"github.com/labex-labs/skilltag/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLTAG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skilltag")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	config.InitConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skilltag",
	Short: "Tag lab steps with the skills their code demonstrates",
	Long: `skilltag classifies lesson code into skill identifiers such as "python/for_loop"
and keeps the skills of every step in a corpus of lab records up to date.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "failed to read config file %s", path)
			}
		}
		presenter.SetQuiet(viper.GetBool("quiet"))
		return logger.Configure(viper.GetString("log_level"), viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// loadConfig reads the effective configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.GetConfigFromViper()
	if err != nil {
		presenter.Error(err, "Invalid configuration")
		os.Exit(1)
	}
	return cfg
}

func main() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.skilltag/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (fmt or json)")
	rootCmd.PersistentFlags().String("profile", "", "Named configuration profile to apply")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(technologiesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
