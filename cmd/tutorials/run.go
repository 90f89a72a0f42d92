package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/phanxgames/tutorials/input"
	"github.com/phanxgames/tutorials/internal/config"
	"github.com/phanxgames/tutorials/internal/game"
)

var sceneSummaries = map[string]string{
	game.CameraSceneName: "Player in a large world seen through a movable, zoomable camera",
	game.AABBSceneName:   "Two boxes colored by whether they overlap",
}

var sceneHelp = map[string]string{
	game.CameraSceneName: `Controls:
  WASD      - Move the player
  Arrows    - Move the camera
  Q/E       - Rotate the camera
  Z/X       - Zoom in/out
  F         - Toggle following the player
  Home      - Scroll back to the world origin
  C         - Toggle a centered camera origin
  F12       - Screenshot
  Esc       - Quit`,
	game.AABBSceneName: `Controls:
  Arrows    - Move the left box
  F12       - Screenshot
  Esc       - Quit`,
}

func sceneCommands() []*cobra.Command {
	var cmds []*cobra.Command
	for _, name := range game.Names() {
		cmds = append(cmds, &cobra.Command{
			Use:   name,
			Short: sceneSummaries[name],
			Long:  sceneSummaries[name] + ".\n\n" + sceneHelp[name],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runScene(name, cmd.ErrOrStderr())
			},
		})
	}
	return cmds
}

func runScene(name string, stderr io.Writer) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cfg.Log.Level, flagLogLevel)
	if err != nil {
		return err
	}
	if source == "" {
		logger.Info("using built-in config")
	} else {
		logger.Info("loaded config", "path", source)
	}

	opts := game.Options{Logger: logger}

	if flagScript != "" {
		script, err := input.LoadScript(flagScript)
		if err != nil {
			return err
		}
		opts.Script = script
		logger.Info("playing input script", "path", flagScript)
	}

	if flagWatch {
		if source == "" {
			logger.Warn("--watch ignored: no config file to watch")
		} else {
			w, err := config.NewWatcher(source)
			if err != nil {
				return fmt.Errorf("watch %s: %w", source, err)
			}
			defer w.Close()
			opts.Watcher = w
			logger.Info("watching config", "path", source)
		}
	}

	scene, err := game.New(name, cfg, opts)
	if err != nil {
		return err
	}
	logger.Info("starting scene", "scene", name)
	return game.Run(scene, cfg.Window)
}

// newLogger builds the process logger. The flag level, when set, overrides
// the configured one. Output that is not a terminal is written as logfmt.
func newLogger(w io.Writer, configured, override string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tutorials",
	})
	if isTerminal(w) {
		logger.SetStyles(logStyles())
	} else {
		logger.SetFormatter(log.LogfmtFormatter)
	}

	level := configured
	if override != "" {
		level = override
	}
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styles.Values["err"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	return styles
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
