// Package collision provides an axis-aligned bounding box with edge
// accessors and a strict overlap test.
package collision

import (
	"image"

	"github.com/phanxgames/tutorials/geom"
)

// BoundingBox is an axis-aligned rectangle described by its top-left
// position and size.
type BoundingBox struct {
	Position geom.Vec2 // Top-left corner
	Width    float64
	Height   float64
}

// NewBoundingBox creates a bounding box with its top-left corner at position.
func NewBoundingBox(position geom.Vec2, width, height float64) *BoundingBox {
	return &BoundingBox{
		Position: position,
		Width:    width,
		Height:   height,
	}
}

// Top returns the y-coordinate of the top edge.
func (bb *BoundingBox) Top() float64 { return bb.Position.Y }

// SetTop moves the box so its top edge is at y.
func (bb *BoundingBox) SetTop(y float64) { bb.Position.Y = y }

// Bottom returns the y-coordinate of the bottom edge.
func (bb *BoundingBox) Bottom() float64 { return bb.Position.Y + bb.Height }

// SetBottom moves the box so its bottom edge is at y. The height is kept.
func (bb *BoundingBox) SetBottom(y float64) { bb.Position.Y = y - bb.Height }

// Left returns the x-coordinate of the left edge.
func (bb *BoundingBox) Left() float64 { return bb.Position.X }

// SetLeft moves the box so its left edge is at x.
func (bb *BoundingBox) SetLeft(x float64) { bb.Position.X = x }

// Right returns the x-coordinate of the right edge.
func (bb *BoundingBox) Right() float64 { return bb.Position.X + bb.Width }

// SetRight moves the box so its right edge is at x. The width is kept.
func (bb *BoundingBox) SetRight(x float64) { bb.Position.X = x - bb.Width }

// Center returns the midpoint of the box.
func (bb *BoundingBox) Center() geom.Vec2 {
	return geom.Vec2{X: bb.Position.X + bb.Width/2, Y: bb.Position.Y + bb.Height/2}
}

// MoveTo places the top-left corner at p.
func (bb *BoundingBox) MoveTo(p geom.Vec2) {
	bb.Position = p
}

// MoveBy offsets the box by delta.
func (bb *BoundingBox) MoveBy(delta geom.Vec2) {
	bb.Position = bb.Position.Add(delta)
}

// Rect returns the box as a geom.Rect.
func (bb *BoundingBox) Rect() geom.Rect {
	return geom.Rect{X: bb.Position.X, Y: bb.Position.Y, Width: bb.Width, Height: bb.Height}
}

// Bounds returns the box as an integer rectangle for drawing. Left, top,
// width and height are each truncated toward zero.
func (bb *BoundingBox) Bounds() image.Rectangle {
	x, y := int(bb.Left()), int(bb.Top())
	return image.Rect(x, y, x+int(bb.Width), y+int(bb.Height))
}

// Contains reports whether p lies inside the box. Points on the edge are
// considered inside.
func (bb *BoundingBox) Contains(p geom.Vec2) bool {
	return p.X >= bb.Left() && p.X <= bb.Right() &&
		p.Y >= bb.Top() && p.Y <= bb.Bottom()
}

// ClampTo keeps the box inside area by moving whichever edge crossed it.
// Horizontally the left edge wins when both would apply; vertically both
// edges are checked in turn, so a box taller than area ends bottom-aligned.
func (bb *BoundingBox) ClampTo(area geom.Rect) {
	if bb.Left() <= area.X {
		bb.SetLeft(area.X)
	} else if bb.Right() >= area.Right() {
		bb.SetRight(area.Right())
	}

	if bb.Top() <= area.Y {
		bb.SetTop(area.Y)
	}
	if bb.Bottom() >= area.Bottom() {
		bb.SetBottom(area.Bottom())
	}
}

// CollidesWith reports whether bb and other overlap.
func (bb *BoundingBox) CollidesWith(other *BoundingBox) bool {
	return Collides(bb, other)
}

// Collides reports whether the open interiors of a and b overlap. Boxes that
// only share an edge do not collide.
func Collides(a, b *BoundingBox) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}
