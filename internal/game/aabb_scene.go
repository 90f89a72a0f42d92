package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/tutorials/collision"
	"github.com/phanxgames/tutorials/geom"
	"github.com/phanxgames/tutorials/input"
	"github.com/phanxgames/tutorials/internal/config"
)

// AABBSceneName is the name the collision scene is registered under.
const AABBSceneName = "aabb"

// AABBScene moves one box with the arrow keys against a static one and
// colors both by whether they collide.
type AABBScene struct {
	shell
	cfg       config.AABBConfig
	box       *collision.BoundingBox
	other     *collision.BoundingBox
	colliding bool
}

// NewAABBScene creates the collision scene from cfg. The moving box starts
// on the left edge at half the screen height, the static box at the screen
// center.
func NewAABBScene(cfg config.Config, opts Options) *AABBScene {
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	size := cfg.AABB.BoxSize
	s := &AABBScene{
		shell: newShell(AABBSceneName, cfg, opts),
		box:   collision.NewBoundingBox(geom.Vec2{X: 0, Y: h / 2}, size, size),
		other: collision.NewBoundingBox(geom.Vec2{X: w / 2, Y: h / 2}, size, size),
	}
	s.ApplyConfig(cfg)
	return s
}

// Name implements Scene.
func (s *AABBScene) Name() string { return AABBSceneName }

// ApplyConfig implements Scene. Both boxes take the new size in place.
func (s *AABBScene) ApplyConfig(cfg config.Config) {
	s.applyConfig(cfg)
	s.cfg = cfg.AABB
	for _, b := range []*collision.BoundingBox{s.box, s.other} {
		b.Width = cfg.AABB.BoxSize
		b.Height = cfg.AABB.BoxSize
	}
	s.colliding = s.box.CollidesWith(s.other)
}

// Boxes returns the moving and the static box.
func (s *AABBScene) Boxes() (moving, static *collision.BoundingBox) {
	return s.box, s.other
}

// Colliding reports the collision state as of the last step.
func (s *AABBScene) Colliding() bool { return s.colliding }

// Update implements ebiten.Game.
func (s *AABBScene) Update() error {
	if err := s.beginFrame(s.ApplyConfig); err != nil {
		return err
	}
	s.step(1/float64(ebiten.TPS()), s.keys)
	return nil
}

func (s *AABBScene) step(dt float64, keys input.KeyState) {
	s.box.MoveBy(input.Movement(keys, input.ArrowKeys, s.cfg.Speed, dt))
	s.box.ClampTo(s.screenRect())

	was := s.colliding
	s.colliding = s.box.CollidesWith(s.other)
	if s.colliding != was {
		s.log.Debug("collision changed", "colliding", s.colliding,
			"box", formatVec(s.box.Position), "other", formatVec(s.other.Position))
	}
}

func (s *AABBScene) screenRect() geom.Rect {
	return geom.Rect{Width: float64(s.width), Height: float64(s.height)}
}

// Draw implements ebiten.Game.
func (s *AABBScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	clr := missColor
	if s.colliding {
		clr = hitColor
	}
	for _, b := range []*collision.BoundingBox{s.box, s.other} {
		r := b.Bounds()
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
	}

	drawHUD(screen, []string{
		"Box: " + formatVec(s.box.Position),
		fmt.Sprintf("Colliding: %t", s.colliding),
	})
	s.endFrame(screen)
}
