// Package game holds the two sample programs: a player walking around a
// world seen through a Camera, and two boxes tested for AABB collision.
//
// Each scene keeps its per-frame logic in a step method that takes the
// elapsed time and a KeyState, so it can be driven by the keyboard, a
// recorded input.Script, or a test.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tutorials/input"
	"github.com/phanxgames/tutorials/internal/config"
)

// Scene is a runnable sample.
type Scene interface {
	ebiten.Game
	// Name is the subcommand the scene is registered under.
	Name() string
	// ApplyConfig swaps in new tunables without resetting scene state.
	ApplyConfig(cfg config.Config)
}

// Options carries the optional collaborators shared by both scenes.
type Options struct {
	// Logger defaults to a discarding logger.
	Logger *log.Logger
	// Script replaces the keyboard when set. The scene quits once it is done.
	Script *input.Script
	// Watcher triggers a config reload from its file on every event.
	Watcher *config.Watcher
}

// Keys every scene reacts to on press rather than while held.
var commonKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyF12}

// shell is the frame plumbing shared by both scenes: input source, key
// edges, hot reload, screenshots and the FPS overlay.
type shell struct {
	log     *log.Logger
	keys    input.KeyState
	script  *input.Script
	tracker *input.Tracker
	watcher *config.Watcher
	shots   screenshotter
	showFPS bool
	width   int
	height  int
}

func newShell(scene string, cfg config.Config, opts Options, watched ...ebiten.Key) shell {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var keys input.KeyState = input.Keyboard{}
	if opts.Script != nil {
		keys = opts.Script
	}
	s := shell{
		log:     logger,
		keys:    keys,
		script:  opts.Script,
		tracker: input.NewTracker(keys, append(watched, commonKeys...)...),
		watcher: opts.Watcher,
		shots:   newScreenshotter(scene, logger),
	}
	s.applyConfig(cfg)
	return s
}

func (s *shell) applyConfig(cfg config.Config) {
	s.shots.dir = cfg.Screenshots.Dir
	s.showFPS = cfg.Window.ShowFPS
	s.width = cfg.Window.Width
	s.height = cfg.Window.Height
}

// beginFrame advances the input source, polls for config changes and
// handles the keys common to every scene. It returns ebiten.Termination
// when the scene should exit.
func (s *shell) beginFrame(apply func(config.Config)) error {
	if s.script != nil {
		// The frame that finishes the script still draws, so its
		// screenshots are written before the scene exits.
		if s.script.Done() {
			s.log.Info("input script finished")
			return ebiten.Termination
		}
		s.script.Advance()
		for _, label := range s.script.TakeScreenshots() {
			s.shots.request(label)
		}
	}
	s.tracker.Update()
	s.pollReload(apply)

	if s.tracker.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if s.tracker.JustPressed(ebiten.KeyF12) {
		s.shots.request("manual")
	}
	return nil
}

func (s *shell) pollReload(apply func(config.Config)) {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				s.log.Warn("config reload rejected", "path", path, "err", err)
				continue
			}
			apply(cfg)
			s.log.Info("config reloaded", "path", path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			s.log.Warn("config watch error", "err", err)
		default:
			return
		}
	}
}

// endFrame draws the overlays and writes pending screenshots.
func (s *shell) endFrame(screen *ebiten.Image) {
	if s.showFPS {
		drawFPS(screen)
	}
	s.shots.flush(screen)
}

// Layout implements ebiten.Game with a fixed logical screen.
func (s *shell) Layout(_, _ int) (int, int) {
	return s.width, s.height
}

// Run opens the window described by cfg and runs scene until it quits.
// A normal exit through ebiten.Termination returns nil.
func Run(scene Scene, cfg config.WindowConfig) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Names lists the registered scenes in display order.
func Names() []string {
	return []string{CameraSceneName, AABBSceneName}
}

// New builds the scene registered under name.
func New(name string, cfg config.Config, opts Options) (Scene, error) {
	switch name {
	case CameraSceneName:
		return NewCameraScene(cfg, opts), nil
	case AABBSceneName:
		return NewAABBScene(cfg, opts), nil
	}
	return nil, &UnknownSceneError{Name: name}
}

// UnknownSceneError is returned by New for an unregistered name.
type UnknownSceneError struct {
	Name string
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("unknown scene %q", e.Name)
}
