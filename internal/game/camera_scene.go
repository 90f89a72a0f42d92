package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tutorials/camera"
	"github.com/phanxgames/tutorials/collision"
	"github.com/phanxgames/tutorials/geom"
	"github.com/phanxgames/tutorials/input"
	"github.com/phanxgames/tutorials/internal/config"
)

// CameraSceneName is the name the camera scene is registered under.
const CameraSceneName = "camera"

// CameraScene is a player walking around a world larger than the screen,
// seen through a Camera that is steered independently.
//
//	WASD     move the player
//	Arrows   move the camera
//	Q / E    rotate the camera
//	Z / X    zoom in / out
//	F        toggle following the player
//	Home     scroll back to the world origin
//	C        toggle a centered camera origin
type CameraScene struct {
	shell
	cfg      config.CameraConfig
	cam      *camera.Camera
	player   *collision.BoundingBox
	cursor   geom.Vec2
	centered bool
}

// NewCameraScene creates the camera scene from cfg.
func NewCameraScene(cfg config.Config, opts Options) *CameraScene {
	s := &CameraScene{
		shell: newShell(CameraSceneName, cfg, opts, ebiten.KeyF, ebiten.KeyC, ebiten.KeyHome),
		cam:   camera.NewWithSize(cfg.Window.Width, cfg.Window.Height),
		player: collision.NewBoundingBox(cfg.Camera.PlayerStart,
			cfg.Camera.PlayerSize.X, cfg.Camera.PlayerSize.Y),
	}
	s.ApplyConfig(cfg)
	return s
}

// Name implements Scene.
func (s *CameraScene) Name() string { return CameraSceneName }

// ApplyConfig implements Scene. The player keeps its position but takes the
// new size; the camera keeps its pose.
func (s *CameraScene) ApplyConfig(cfg config.Config) {
	s.applyConfig(cfg)
	s.cfg = cfg.Camera
	s.player.Width = cfg.Camera.PlayerSize.X
	s.player.Height = cfg.Camera.PlayerSize.Y
	s.cam.SetViewport(geom.Rect{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)})
	if s.centered {
		s.cam.CenterOrigin()
	}
	if cfg.Camera.ClampToWorld {
		s.cam.SetBounds(cfg.Camera.World)
	} else {
		s.cam.ClearBounds()
	}
	if s.cam.Following() {
		s.cam.Follow(s.player, geom.Vec2{}, cfg.Camera.FollowLerp)
	}
}

// Camera returns the scene camera.
func (s *CameraScene) Camera() *camera.Camera { return s.cam }

// Player returns the player's box.
func (s *CameraScene) Player() *collision.BoundingBox { return s.player }

// Update implements ebiten.Game.
func (s *CameraScene) Update() error {
	if err := s.beginFrame(s.ApplyConfig); err != nil {
		return err
	}
	mx, my := ebiten.CursorPosition()
	s.cursor = geom.Vec2{X: float64(mx), Y: float64(my)}
	s.step(1/float64(ebiten.TPS()), s.keys)
	return nil
}

func (s *CameraScene) step(dt float64, keys input.KeyState) {
	s.player.MoveBy(input.Movement(keys, input.WASD, s.cfg.PlayerSpeed, dt))
	s.clampPlayer()

	if s.tracker.JustPressed(ebiten.KeyC) {
		s.toggleCentered()
	}
	if s.tracker.JustPressed(ebiten.KeyF) {
		s.toggleFollow()
	}
	if s.tracker.JustPressed(ebiten.KeyHome) {
		s.cam.Unfollow()
		s.cam.ScrollTo(geom.Vec2{}, s.cfg.ScrollDuration, ease.OutCubic)
		s.log.Debug("camera scrolling home")
	}

	if !s.cam.Following() && !s.cam.Scrolling() {
		s.cam.Move(input.Movement(keys, input.ArrowKeys, s.cfg.CameraSpeed, dt))
	}

	if keys.IsKeyPressed(ebiten.KeyQ) {
		s.cam.SetRotation(s.cam.Rotation() - s.cfg.RotationSpeed*dt)
	} else if keys.IsKeyPressed(ebiten.KeyE) {
		s.cam.SetRotation(s.cam.Rotation() + s.cfg.RotationSpeed*dt)
	}

	if keys.IsKeyPressed(ebiten.KeyZ) {
		s.zoomBy(s.cfg.ZoomSpeed * dt)
	} else if keys.IsKeyPressed(ebiten.KeyX) {
		s.zoomBy(-s.cfg.ZoomSpeed * dt)
	}

	s.cam.Update(float32(dt))
}

// clampPlayer keeps the player inside the world, checking each edge in
// turn.
func (s *CameraScene) clampPlayer() {
	w := s.cfg.World
	if s.player.Left() <= w.X {
		s.player.SetLeft(w.X)
	}
	if s.player.Right() >= w.Right() {
		s.player.SetRight(w.Right())
	}
	if s.player.Top() <= w.Y {
		s.player.SetTop(w.Y)
	}
	if s.player.Bottom() >= w.Bottom() {
		s.player.SetBottom(w.Bottom())
	}
}

func (s *CameraScene) toggleCentered() {
	s.centered = !s.centered
	if s.centered {
		s.cam.CenterOrigin()
	} else {
		s.cam.SetOrigin(geom.Vec2{})
	}
	s.log.Debug("camera origin", "centered", s.centered, "origin", s.cam.Origin())
}

// toggleFollow starts or stops tracking the player. Following needs a
// centered origin so the player ends up mid-screen.
func (s *CameraScene) toggleFollow() {
	if s.cam.Following() {
		s.cam.Unfollow()
		s.log.Debug("camera follow", "on", false)
		return
	}
	if !s.centered {
		s.toggleCentered()
	}
	s.cam.Follow(s.player, geom.Vec2{}, s.cfg.FollowLerp)
	s.log.Debug("camera follow", "on", true)
}

// zoomBy changes both zoom axes by delta. Zoom is not clamped, so it can
// reach zero and make the view degenerate.
func (s *CameraScene) zoomBy(delta float64) {
	z := s.cam.Zoom()
	s.cam.SetZoom(geom.Vec2{X: z.X + delta, Y: z.Y + delta})
}

// Draw implements ebiten.Game.
func (s *CameraScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	view := s.cam.GeoM()
	world := s.cfg.World
	fillRect(screen, world, view, worldColor)
	for x := world.X + gridSpacing; x < world.Right(); x += gridSpacing {
		fillRect(screen, geom.Rect{X: x, Y: world.Y, Width: 1, Height: world.Height}, view, gridColor)
	}
	for y := world.Y + gridSpacing; y < world.Bottom(); y += gridSpacing {
		fillRect(screen, geom.Rect{X: world.X, Y: y, Width: world.Width, Height: 1}, view, gridColor)
	}
	fillRect(screen, s.player.Rect(), view, playerColor)

	drawHUD(screen, s.hudLines())
	s.endFrame(screen)
}

func (s *CameraScene) hudLines() []string {
	mouseWorld := "degenerate transform"
	if p, err := s.cam.ScreenToWorld(s.cursor); err == nil {
		mouseWorld = formatVec(p)
	}
	zoom := s.cam.Zoom()
	return []string{
		"Player Position (top-left): " + formatVec(s.player.Position),
		"Camera Position (top-left): " + formatVec(s.cam.Position()),
		fmt.Sprintf("Camera Zoom: (%.2f, %.2f)  Rotation: %.2f rad", zoom.X, zoom.Y, s.cam.Rotation()),
		"Mouse Position (Screen Space): " + formatVec(s.cursor),
		"Mouse Position (World Space): " + mouseWorld,
		fmt.Sprintf("Follow: %t  Centered: %t", s.cam.Following(), s.centered),
	}
}
