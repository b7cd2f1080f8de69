package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const flagConfig = "config"

// initConfig wires viper the way the teacher's telemetry_config.go reads
// config.toml overrides: an optional file supplies defaults for the
// persistent flags, and anything the operator passed explicitly on the
// command line still wins. STABLESWAPD_-prefixed environment variables
// are honored too (e.g. STABLESWAPD_STATE, STABLESWAPD_ADMIN).
func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("stableswapd")
	v.AutomaticEnv()

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	for _, name := range []string{flagState, flagAdmin, flagNow} {
		if !cmd.Flags().Changed(name) && v.IsSet(name) {
			if err := cmd.Flags().Set(name, v.GetString(name)); err != nil {
				return err
			}
		}
	}
	return nil
}
