package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotter queues labeled captures during Update and writes them at
// the end of the next Draw. Files are named
//
//	<scene>_<run start>_<sequence>_<label>.png
//
// and the sequence never repeats within a run.
type screenshotter struct {
	dir   string
	scene string
	run   string
	seq   int
	queue []string
	log   *log.Logger
}

func newScreenshotter(scene string, logger *log.Logger) screenshotter {
	return screenshotter{
		scene: scene,
		run:   time.Now().Format("20060102-150405"),
		log:   logger,
	}
}

func (s *screenshotter) request(label string) {
	s.queue = append(s.queue, label)
}

// nextPath reserves the file name for the next capture of label.
func (s *screenshotter) nextPath(label string) string {
	s.seq++
	name := fmt.Sprintf("%s_%s_%04d_%s.png", s.scene, s.run, s.seq, sanitizeLabel(label))
	return filepath.Join(s.dir, name)
}

// flush reads screen back once and saves it for every queued label.
func (s *screenshotter) flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	labels := s.queue
	s.queue = nil

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error("screenshot directory unavailable", "dir", s.dir, "err", err)
		return
	}
	img := capture(screen)
	for _, label := range labels {
		path := s.nextPath(label)
		if err := savePNG(path, img); err != nil {
			s.log.Error("screenshot not saved", "label", label, "err", err)
			continue
		}
		s.log.Info("screenshot saved", "path", path)
	}
}

// capture copies the screen into an image.RGBA. Ebitengine pixels are
// premultiplied, which is exactly image.RGBA's layout, so the PNG encoder
// does the conversion to straight alpha.
func capture(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel maps a free-form label onto [A-Za-z0-9.-], replacing any
// other rune with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || ('0' <= r && r <= '9') ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return r
		}
		return '_'
	}, label)
}
