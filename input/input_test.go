package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tutorials/geom"
)

// fakeKeys is a KeyState whose held keys are set directly by the test.
type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(k ebiten.Key) bool { return f[k] }

func held(keys ...ebiten.Key) fakeKeys {
	f := fakeKeys{}
	for _, k := range keys {
		f[k] = true
	}
	return f
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want geom.Vec2
	}{
		{"none", held(), geom.Vec2{}},
		{"up", held(ebiten.KeyArrowUp), geom.Vec2{Y: -1}},
		{"down", held(ebiten.KeyArrowDown), geom.Vec2{Y: 1}},
		{"left", held(ebiten.KeyArrowLeft), geom.Vec2{X: -1}},
		{"right", held(ebiten.KeyArrowRight), geom.Vec2{X: 1}},
		{"up wins over down", held(ebiten.KeyArrowUp, ebiten.KeyArrowDown), geom.Vec2{Y: -1}},
		{"left wins over right", held(ebiten.KeyArrowLeft, ebiten.KeyArrowRight), geom.Vec2{X: -1}},
		{"diagonal", held(ebiten.KeyArrowDown, ebiten.KeyArrowRight), geom.Vec2{X: 1, Y: 1}},
		{"other layout ignored", held(ebiten.KeyW, ebiten.KeyD), geom.Vec2{}},
	}
	for _, tt := range tests {
		if got := Direction(tt.keys, ArrowKeys); got != tt.want {
			t.Errorf("%s: Direction = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMovement(t *testing.T) {
	got := Movement(held(ebiten.KeyW, ebiten.KeyA), WASD, 200, 0.5)
	if got != (geom.Vec2{X: -100, Y: -100}) {
		t.Errorf("Movement = %v, want (-100,-100)", got)
	}
}

func TestTrackerJustPressed(t *testing.T) {
	keys := held()
	tr := NewTracker(keys, ebiten.KeyF)

	tr.Update()
	if tr.JustPressed(ebiten.KeyF) {
		t.Error("JustPressed with key up")
	}

	keys[ebiten.KeyF] = true
	tr.Update()
	if !tr.JustPressed(ebiten.KeyF) {
		t.Error("JustPressed = false on the press frame")
	}

	tr.Update()
	if tr.JustPressed(ebiten.KeyF) {
		t.Error("JustPressed = true while held")
	}

	keys[ebiten.KeyF] = false
	tr.Update()
	keys[ebiten.KeyF] = true
	tr.Update()
	if !tr.JustPressed(ebiten.KeyF) {
		t.Error("JustPressed = false after release and press")
	}

	if tr.JustPressed(ebiten.KeyG) {
		t.Error("unwatched key reported as pressed")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want ebiten.Key
	}{
		{"ArrowUp", ebiten.KeyArrowUp},
		{"arrowleft", ebiten.KeyArrowLeft},
		{"W", ebiten.KeyW},
		{" F12 ", ebiten.KeyF12},
		{"Escape", ebiten.KeyEscape},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if err != nil {
			t.Errorf("ParseKey(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseKey("NotAKey"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestParseScript(t *testing.T) {
	data := []byte(`
steps:
  - keys: [ArrowRight]
    frames: 2
  - wait: 1
  - screenshot: after-move
`)
	s, err := ParseScript(data)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(s.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(s.steps))
	}

	// Frames 1-2 hold ArrowRight.
	for frame := 1; frame <= 2; frame++ {
		s.Advance()
		if !s.IsKeyPressed(ebiten.KeyArrowRight) {
			t.Errorf("frame %d: ArrowRight not held", frame)
		}
	}

	// Frame 3 waits.
	s.Advance()
	if s.IsKeyPressed(ebiten.KeyArrowRight) {
		t.Error("frame 3: ArrowRight still held during wait")
	}
	if s.Done() {
		t.Error("frame 3: Done too early")
	}

	// Frame 4 takes the screenshot and finishes.
	s.Advance()
	shots := s.TakeScreenshots()
	if len(shots) != 1 || shots[0] != "after-move" {
		t.Errorf("screenshots = %v, want [after-move]", shots)
	}
	if !s.Done() {
		t.Error("Done = false after the last step")
	}
	if len(s.TakeScreenshots()) != 0 {
		t.Error("TakeScreenshots did not clear the queue")
	}

	s.Advance()
	if s.IsKeyPressed(ebiten.KeyArrowRight) {
		t.Error("keys held after the script finished")
	}
}

func TestParseScriptKeysDefaultToOneFrame(t *testing.T) {
	s, err := ParseScript([]byte(`steps: [{keys: [W]}, {keys: [S]}]`))
	if err != nil {
		t.Fatal(err)
	}
	s.Advance()
	if !s.IsKeyPressed(ebiten.KeyW) {
		t.Error("frame 1: W not held")
	}
	s.Advance()
	if s.IsKeyPressed(ebiten.KeyW) || !s.IsKeyPressed(ebiten.KeyS) {
		t.Error("frame 2: expected only S held")
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "steps: [unterminated"},
		{"empty", "steps: []"},
		{"unknown key", "steps: [{keys: [Banana]}]"},
		{"negative frames", "steps: [{keys: [W], frames: -2}]"},
	}
	for _, tt := range tests {
		if _, err := ParseScript([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - wait: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	for i := 0; i < 3; i++ {
		s.Advance()
	}
	if s.Done() {
		t.Error("Done after 3 of 3 wait frames; expected on the next Advance")
	}
	s.Advance()
	if !s.Done() {
		t.Error("Done = false after the wait")
	}

	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
