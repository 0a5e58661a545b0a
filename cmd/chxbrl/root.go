package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "chxbrl",
	Short: "chxbrl extracts row tuples from Companies House bulk XBRL accounts data",
	Long: `chxbrl reads UK Companies House XBRL/iXBRL annual accounts filings and
emits the fixed 37-column catalog of balance-sheet, profit-and-loss, and
entity facts as CSV rows - one fact tagging scheme in, one row schema out,
regardless of which taxonomy version or encoding a given filing used.`,
}

// Execute runs rootCmd; each subcommand file adds its own command to
// rootCmd in its init. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chxbrl.toml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".chxbrl")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
