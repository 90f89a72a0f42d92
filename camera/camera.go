// Package camera implements a 2D camera: a pose (position, rotation, zoom,
// origin) and the lazily derived affine transform that converts between
// world space and screen space.
//
// A Camera is not safe for concurrent use; it is meant to be owned by a
// single game loop and mutated from Update.
package camera

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tutorials/geom"
)

// ErrDegenerateTransform is returned when the camera transform cannot be
// inverted, which happens when either zoom component is zero.
var ErrDegenerateTransform = errors.New("camera: degenerate camera transform")

// Target is anything the camera can follow.
type Target interface {
	Center() geom.Vec2
}

// Camera controls the view into the world.
type Camera struct {
	position geom.Vec2
	zoom     geom.Vec2
	origin   geom.Vec2
	rotation float64
	viewport geom.Rect

	transform  geom.Matrix
	inverse    geom.Matrix
	inverseErr error
	dirty      bool
	recomputes int

	followTarget Target
	followOffset geom.Vec2
	followLerp   float64

	boundsEnabled bool
	bounds        geom.Rect

	scroll    *vecTween
	zoomTween *vecTween
}

// New creates a Camera with default pose for the given viewport.
func New(viewport geom.Rect) *Camera {
	return &Camera{
		zoom:      geom.One,
		viewport:  viewport,
		transform: geom.Identity,
		inverse:   geom.Identity,
	}
}

// NewWithSize creates a Camera whose viewport is a width x height rectangle
// at the screen origin.
func NewWithSize(width, height int) *Camera {
	return New(geom.Rect{Width: float64(width), Height: float64(height)})
}

// Position returns the top-left world-space point the camera looks at.
func (c *Camera) Position() geom.Vec2 { return c.position }

// SetPosition moves the camera. Setting the current value is a no-op.
func (c *Camera) SetPosition(p geom.Vec2) {
	if c.position == p {
		return
	}
	c.position = p
	c.dirty = true
}

// X returns the camera's world-space x-coordinate.
func (c *Camera) X() float64 { return c.position.X }

// SetX sets only the x-coordinate of the position.
func (c *Camera) SetX(x float64) {
	c.SetPosition(geom.Vec2{X: x, Y: c.position.Y})
}

// Y returns the camera's world-space y-coordinate.
func (c *Camera) Y() float64 { return c.position.Y }

// SetY sets only the y-coordinate of the position.
func (c *Camera) SetY(y float64) {
	c.SetPosition(geom.Vec2{X: c.position.X, Y: y})
}

// Move offsets the position by delta.
func (c *Camera) Move(delta geom.Vec2) {
	c.SetPosition(c.position.Add(delta))
}

// Rotation returns the camera rotation in radians.
func (c *Camera) Rotation() float64 { return c.rotation }

// SetRotation sets the rotation in radians. Setting the current value is a no-op.
func (c *Camera) SetRotation(r float64) {
	if c.rotation == r {
		return
	}
	c.rotation = r
	c.dirty = true
}

// Zoom returns the per-axis zoom factor.
func (c *Camera) Zoom() geom.Vec2 { return c.zoom }

// SetZoom sets the per-axis zoom factor (1 = no zoom, >1 = zoom in).
// Zero on either axis is accepted but makes the transform non-invertible.
func (c *Camera) SetZoom(z geom.Vec2) {
	if c.zoom == z {
		return
	}
	c.zoom = z
	c.dirty = true
}

// Origin returns the screen-space pivot applied after rotation and zoom.
func (c *Camera) Origin() geom.Vec2 { return c.origin }

// SetOrigin sets the pivot. Setting the current value is a no-op.
func (c *Camera) SetOrigin(o geom.Vec2) {
	if c.origin == o {
		return
	}
	c.origin = o
	c.dirty = true
}

// CenterOrigin places the origin at the middle of the viewport, so the
// camera position maps to the viewport center.
func (c *Camera) CenterOrigin() {
	c.SetOrigin(geom.Vec2{X: c.viewport.Width / 2, Y: c.viewport.Height / 2})
}

// Viewport returns the screen-space rectangle the camera renders into.
func (c *Camera) Viewport() geom.Rect { return c.viewport }

// SetViewport replaces the viewport, e.g. after a window resize. The
// transform does not depend on the viewport, so the cache stays valid.
func (c *Camera) SetViewport(r geom.Rect) {
	c.viewport = r
}

// Transform returns the world-to-screen matrix, recomputing it if any pose
// field changed since the last read.
func (c *Camera) Transform() geom.Matrix {
	c.updateMatrices()
	return c.transform
}

// InverseTransform returns the screen-to-world matrix. If the transform is
// singular it returns the identity matrix and an error wrapping
// ErrDegenerateTransform.
func (c *Camera) InverseTransform() (geom.Matrix, error) {
	c.updateMatrices()
	return c.inverse, c.inverseErr
}

// GeoM returns the transform as an ebiten.GeoM, ready to be concatenated
// after a sprite's local GeoM.
func (c *Camera) GeoM() ebiten.GeoM {
	return c.Transform().GeoM()
}

// updateMatrices recomputes the cached transform and its inverse if dirty.
//
//	transform = T(-floor(position)) -> R(rotation) -> S(zoom) -> T(floor(origin))
//
// Position and origin are floored so sprites land on whole pixels.
func (c *Camera) updateMatrices() {
	if !c.dirty {
		return
	}
	pos := c.position.Floor()
	origin := c.origin.Floor()

	c.transform = geom.Translation(-pos.X, -pos.Y).
		Then(geom.Rotation(c.rotation)).
		Then(geom.Scaling(c.zoom.X, c.zoom.Y)).
		Then(geom.Translation(origin.X, origin.Y))

	inv, err := c.transform.Invert()
	if err != nil {
		err = fmt.Errorf("%w: zoom (%g, %g): %w", ErrDegenerateTransform, c.zoom.X, c.zoom.Y, err)
	}
	c.inverse = inv
	c.inverseErr = err
	c.dirty = false
	c.recomputes++
}

// WorldToScreen converts a world-space point to screen space.
func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return c.Transform().Apply(p)
}

// ScreenToWorld converts a screen-space point to world space. When the
// transform is degenerate the point is returned unchanged with an error.
func (c *Camera) ScreenToWorld(p geom.Vec2) (geom.Vec2, error) {
	inv, err := c.InverseTransform()
	if err != nil {
		return p, err
	}
	return inv.Apply(p), nil
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() (geom.Rect, error) {
	inv, err := c.InverseTransform()
	if err != nil {
		return geom.Rect{}, err
	}
	return inv.TransformRect(c.viewport), nil
}

// Follow makes the camera track target, moving its position toward
// target.Center()+offset by lerp each Update. A lerp of 1.0 snaps.
func (c *Camera) Follow(target Target, offset geom.Vec2, lerp float64) {
	c.followTarget = target
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// Following reports whether the camera currently tracks a target.
func (c *Camera) Following() bool {
	return c.followTarget != nil
}

// ScrollTo animates the camera position to target over duration seconds.
func (c *Camera) ScrollTo(target geom.Vec2, duration float32, easeFn ease.TweenFunc) {
	c.scroll = newVecTween(c.position, target, duration, easeFn)
}

// ZoomTo animates the zoom to z over duration seconds.
func (c *Camera) ZoomTo(z geom.Vec2, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = newVecTween(c.zoom, z, duration, easeFn)
}

// Scrolling reports whether a ScrollTo or ZoomTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil || c.zoomTween != nil
}

// SetBounds enables clamping of the visible area to the world-space rect.
func (c *Camera) SetBounds(bounds geom.Rect) {
	c.boundsEnabled = true
	c.bounds = bounds
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.boundsEnabled = false
}

// ClampToBounds immediately clamps the position so the visible area stays
// within the bounds. No-op if no bounds are set.
func (c *Camera) ClampToBounds() {
	if c.boundsEnabled {
		c.clampToBounds()
	}
}

// Update advances follow, scroll and zoom animations, and bounds clamping.
// dt is the elapsed frame time in seconds.
func (c *Camera) Update(dt float32) {
	if c.followTarget != nil {
		target := c.followTarget.Center().Add(c.followOffset)
		c.SetPosition(c.position.Lerp(target, c.followLerp))
	}

	if c.scroll != nil {
		p, done := c.scroll.update(dt)
		c.SetPosition(p)
		if done {
			c.scroll = nil
		}
	}

	if c.zoomTween != nil {
		z, done := c.zoomTween.update(dt)
		c.SetZoom(z)
		if done {
			c.zoomTween = nil
		}
	}

	if c.boundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds keeps the unrotated visible area inside bounds. An axis
// with zero zoom has no finite visible extent and is left alone.
func (c *Camera) clampToBounds() {
	p := c.position
	if c.zoom.X != 0 {
		p.X = clampAxis(p.X, c.bounds.X, c.bounds.Width, c.viewport.Width/c.zoom.X, c.origin.X/c.zoom.X)
	}
	if c.zoom.Y != 0 {
		p.Y = clampAxis(p.Y, c.bounds.Y, c.bounds.Height, c.viewport.Height/c.zoom.Y, c.origin.Y/c.zoom.Y)
	}
	c.SetPosition(p)
}

// clampAxis clamps a camera coordinate on one axis. The visible span starts
// at pos-lead and is view units long.
func clampAxis(pos, start, length, view, lead float64) float64 {
	lo := start + lead
	hi := start + length - view + lead
	// Bounds smaller than the visible area: center on them.
	if lo > hi {
		return start + length/2 - view/2 + lead
	}
	return max(lo, min(pos, hi))
}
