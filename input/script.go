package input

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// scriptStep is a single entry of an input script as written in YAML.
type scriptStep struct {
	Keys       []string `yaml:"keys,omitempty"`
	Frames     int      `yaml:"frames,omitempty"`
	Wait       int      `yaml:"wait,omitempty"`
	Screenshot string   `yaml:"screenshot,omitempty"`
}

// scriptFile is the top-level YAML structure for an input script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

type step struct {
	keys       map[ebiten.Key]bool
	frames     int
	screenshot string
}

// Script replays a recorded sequence of held keys, waits and screenshot
// requests, one frame at a time. It implements KeyState so a scene can run
// unattended.
//
//	steps:
//	  - keys: [ArrowRight, ArrowDown]
//	    frames: 30
//	  - wait: 10
//	  - screenshot: after-move
type Script struct {
	steps     []step
	cursor    int
	remaining int
	held      map[ebiten.Key]bool
	shots     []string
	done      bool
}

// ParseScript parses a YAML input script.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("parse input script: no steps")
	}

	steps := make([]step, 0, len(f.Steps))
	for i, raw := range f.Steps {
		st := step{screenshot: raw.Screenshot, frames: raw.Frames}
		if raw.Frames < 0 || raw.Wait < 0 {
			return nil, fmt.Errorf("parse input script: step %d: negative frame count", i)
		}
		if len(raw.Keys) > 0 {
			st.keys = make(map[ebiten.Key]bool, len(raw.Keys))
			for _, name := range raw.Keys {
				k, err := ParseKey(name)
				if err != nil {
					return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
				}
				st.keys[k] = true
			}
			if st.frames == 0 {
				st.frames = 1
			}
		}
		if raw.Wait > 0 {
			st.frames += raw.Wait
		}
		steps = append(steps, st)
	}
	return &Script{steps: steps}, nil
}

// LoadScript reads and parses a YAML input script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input script %s: %w", path, err)
	}
	return ParseScript(data)
}

// Advance moves the script forward by one frame. Call it once at the start
// of each Update, before reading keys.
func (s *Script) Advance() {
	if s.done {
		return
	}
	// Zero-length steps (screenshots) run in the same frame as the next one.
	for s.remaining == 0 {
		if s.cursor >= len(s.steps) {
			s.done = true
			s.held = nil
			return
		}
		st := s.steps[s.cursor]
		s.cursor++
		s.held = st.keys
		if st.screenshot != "" {
			s.shots = append(s.shots, st.screenshot)
		}
		s.remaining = st.frames
	}
	s.remaining--
}

// IsKeyPressed implements KeyState.
func (s *Script) IsKeyPressed(key ebiten.Key) bool {
	return s.held[key]
}

// TakeScreenshots returns and clears the pending screenshot labels.
func (s *Script) TakeScreenshots() []string {
	shots := s.shots
	s.shots = nil
	return shots
}

// Done reports whether every step has been played.
func (s *Script) Done() bool {
	return s.done
}
