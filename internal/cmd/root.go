// Package cmd implements the klasifikasi command line.
package cmd

import (
	"github.com/spf13/cobra"
)

const (
	groupCore  = "core"
	groupShell = "shell"
)

var (
	configPath string
	envName    string
)

var rootCmd = &cobra.Command{
	Use:   "klasifikasi",
	Short: "fuzzy lookup of letter classification codes and document types",
	Long: `klasifikasi - fuzzy lookup of letter classification codes and document types
  - search kode klasifikasi and jenis naskah with typo tolerance
  - did-you-mean suggestions when nothing matches
  - chat in the terminal or over HTTP`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "logging environment: local, dev or prod (overrides the config file)")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupCore, Title: "Lookup Commands:"},
		&cobra.Group{ID: groupShell, Title: "Conversation Commands:"},
	)
}
