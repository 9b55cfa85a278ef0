package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "turtlerun",
	Short: "Run turtle scripts and check emitted instructions",
	Long: `turtlerun drives the turtle emitter from a script file.

A script lists commands by name or alias (penup/pu/up, pendown/pd/down,
forward/fd, backward/bk/back, right/rt, left/lt), one per line or as YAML
steps. The emitted output is one instruction per line: pu, pd, fd <n>, rt <n>.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, YAML or TOML (default: $TURTLE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
