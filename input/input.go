// Package input turns raw key states into movement for the sample scenes.
//
// Everything here reads keys through the KeyState interface, so scenes can
// be driven by the live keyboard, a recorded Script, or a fake in tests.
package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tutorials/geom"
)

// KeyState reports whether a key is currently held down.
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
}

// Keyboard is the live KeyState backed by Ebitengine's key polling. It is
// only meaningful while a game is running.
type Keyboard struct{}

// IsKeyPressed implements KeyState.
func (Keyboard) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Bindings names the four directional keys for one controller.
type Bindings struct {
	Up, Down, Left, Right ebiten.Key
}

// ArrowKeys and WASD are the two layouts used by the samples.
var (
	ArrowKeys = Bindings{Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown, Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight}
	WASD      = Bindings{Up: ebiten.KeyW, Down: ebiten.KeyS, Left: ebiten.KeyA, Right: ebiten.KeyD}
)

// Direction returns the held direction as unit steps on each axis. Up wins
// over Down and Left over Right when both are held. Diagonals are not
// normalized.
func Direction(keys KeyState, b Bindings) geom.Vec2 {
	var d geom.Vec2
	if keys.IsKeyPressed(b.Up) {
		d.Y = -1
	} else if keys.IsKeyPressed(b.Down) {
		d.Y = 1
	}

	if keys.IsKeyPressed(b.Left) {
		d.X = -1
	} else if keys.IsKeyPressed(b.Right) {
		d.X = 1
	}
	return d
}

// Movement returns the displacement for one frame: Direction * speed * dt.
func Movement(keys KeyState, b Bindings, speed, dt float64) geom.Vec2 {
	return Direction(keys, b).Scale(speed * dt)
}

// Tracker adds edge detection on top of a KeyState. Call Update exactly once
// per frame before querying JustPressed.
type Tracker struct {
	keys KeyState
	prev map[ebiten.Key]bool
	cur  map[ebiten.Key]bool
}

// NewTracker creates a Tracker for the given keys.
func NewTracker(keys KeyState, watched ...ebiten.Key) *Tracker {
	t := &Tracker{
		keys: keys,
		prev: make(map[ebiten.Key]bool, len(watched)),
		cur:  make(map[ebiten.Key]bool, len(watched)),
	}
	for _, k := range watched {
		t.cur[k] = false
	}
	return t
}

// SetSource swaps the underlying KeyState, keeping the edge history.
func (t *Tracker) SetSource(keys KeyState) {
	t.keys = keys
}

// Update samples every watched key.
func (t *Tracker) Update() {
	for k, v := range t.cur {
		t.prev[k] = v
		t.cur[k] = t.keys.IsKeyPressed(k)
	}
}

// JustPressed reports whether key went down this frame. Keys that were not
// passed to NewTracker always report false.
func (t *Tracker) JustPressed(key ebiten.Key) bool {
	return t.cur[key] && !t.prev[key]
}

// ParseKey resolves a key by its ebiten.Key name, case-insensitively
// (e.g. "ArrowUp", "w", "F12").
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("input: unknown key %q", name)
}
