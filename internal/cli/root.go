// Package cli wires the faraid engine into a cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"faraid-engine/internal/config"
)

// NewRootCommand returns the faraid command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "faraid",
		Short: "Islamic inheritance (faraid) share calculator",
		Long: `faraid distributes an estate among a decedent's spouse, parents and
children using the fixed-share and residuary rules, reducing shares by 'awl
when they exceed the estate and returning a shortfall by radd.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, json or toml)")

	load := func() (*config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(newCalcCommand(load))
	root.AddCommand(newServeCommand(load))
	return root
}
