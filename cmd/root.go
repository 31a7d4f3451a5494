package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// Variable to hold the value of the debug flag
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "consultant-onboarding",
	Short: "Generates directory import files for external consultants.",
	Long: `consultant-onboarding collects a consultant's identity fields, derives the
account name, display name, mail and expiry, and writes the CSV files imported by
the directory provisioning tooling (user, computer and profiling records).`,
	SilenceUsage: true,
}

// ExecuteContext executes the root command with a given context.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "organisation config file (default is ./onboarding.yaml or $HOME/onboarding.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug level logging.")
	rootCmd.PersistentFlags().String("output-dir", "./out", "Directory where CSV files and the audit log are written.")
	rootCmd.PersistentFlags().String("quoting", "predicate", `CSV quoting convention: "predicate" (fields with spaces) or "fixed" (fixed columns).`)

	cobra.CheckErr(viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir")))
	cobra.CheckErr(viper.BindPFlag("quoting", rootCmd.PersistentFlags().Lookup("quoting")))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(checkConfigCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("onboarding")
	}

	viper.SetEnvPrefix("ONBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Info("Using config file", "file", viper.ConfigFileUsed())
	} else {
		slog.Debug("No config file loaded", "error", err)
	}
}
