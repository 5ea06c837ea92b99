// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sitekit CLI, the maintenance
// toolkit for the personal site's profile document.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/azedda/sitekit/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the configuration loaded at startup. Flags override
// individual values per command.
var cfg config.Config

// rootCmd is the base command for the sitekit CLI.
var rootCmd = &cobra.Command{
	Use:   "sitekit",
	Short: "Maintenance toolkit for the profile document",
	Long: `sitekit maintains the personal site's profile document and the PDF
reports that feed it. The validator checks the document against the
structural invariants the front-end relies on; the pdf commands pull
text and evidence snippets out of the reports; the icons and text
commands apply the recurring content edits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sitekit.yaml or ~/.config/sitekit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sitekit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sitekit"))
		}
	}

	viper.SetEnvPrefix("SITEKIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitError signals an exit status for outcomes the command already
// reported itself (the validator prints its own diagnostics).
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
