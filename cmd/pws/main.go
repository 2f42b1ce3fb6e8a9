package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bjb28/pws-api-wrapper/cmd/pws/commands"
	"github.com/bjb28/pws-api-wrapper/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pws",
	Short: "pentest.ws API CLI",
	Long: `A command-line interface for the pentest.ws API.

Manage engagements, hosts, ports, findings, note pages and scratchpads,
and import nmap scan results into an engagement.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.pws/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "pentest.ws API key")
	rootCmd.PersistentFlags().String("base-url", "", "API root (default "+constants.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("nats-url", "", "NATS server for change events")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(commands.KeyAPIKey, rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag(commands.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag(commands.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(commands.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(commands.KeyNATSURL, rootCmd.PersistentFlags().Lookup("nats-url"))

	viper.SetDefault(commands.KeyNATSSubjectPrefix, constants.DefaultSubjectPrefix)

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewEngagementsCommand())
	rootCmd.AddCommand(commands.NewHostsCommand())
	rootCmd.AddCommand(commands.NewPortsCommand())
	rootCmd.AddCommand(commands.NewFindingsCommand())
	rootCmd.AddCommand(commands.NewNotePagesCommand())
	rootCmd.AddCommand(commands.NewScratchpadsCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return
		}

		// Search config in ~/.pws/config.yml
		viper.AddConfigPath(filepath.Join(home, ".pws"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// PWS_API_KEY, PWS_BASE_URL, ...
	viper.SetEnvPrefix("PWS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(commands.KeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
