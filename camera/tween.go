package camera

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tutorials/geom"
)

// vecTween animates both components of a Vec2 with a pair of gween tweens.
type vecTween struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	cur    geom.Vec2
	doneX  bool
	doneY  bool
}

func newVecTween(from, to geom.Vec2, duration float32, easeFn ease.TweenFunc) *vecTween {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	return &vecTween{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, easeFn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, easeFn),
		cur:    from,
	}
}

// update advances both tweens by dt seconds and reports whether both finished.
func (t *vecTween) update(dt float32) (geom.Vec2, bool) {
	if !t.doneX {
		val, done := t.tweenX.Update(dt)
		t.cur.X = float64(val)
		t.doneX = done
	}
	if !t.doneY {
		val, done := t.tweenY.Update(dt)
		t.cur.Y = float64(val)
		t.doneY = done
	}
	return t.cur, t.doneX && t.doneY
}
