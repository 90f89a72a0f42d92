// tutorials runs the 2D camera and AABB collision sample programs.
//
// Usage:
//
//	tutorials camera   - Walk a player around a world through a 2D camera
//	tutorials aabb     - Move a box against another and watch for overlap
//	tutorials list     - List available scenes
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search order, then built-in)
//	--log-level <lvl>   - debug, info, warn or error (default: from config)
//	--watch             - Reload the config file when it changes
//	--script <path>     - Drive the scene from a YAML input script
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
	flagWatch    bool
	flagScript   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tutorials",
	Short: "2D camera and AABB collision samples",
	Long: `Sample programs for a 2D camera and axis-aligned bounding box
collision checks, built on Ebitengine.

Examples:
  tutorials camera
  tutorials aabb --log-level debug
  tutorials camera --config ./my.yaml --watch
  tutorials aabb --script ./scripts/collide.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagScript, "script", "", "Path to a YAML input script")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sceneCommands()...)
}
