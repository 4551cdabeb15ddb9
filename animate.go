package ui

import "github.com/chewxy/math32"

// animatedValue tracks one eased value between frames. from is the
// value the current leg started at; the leg restarts whenever the
// target changes.
type animatedValue struct {
	from      float32
	target    float32
	value     float32
	lastFrame uint64
}

// animationManager moves values linearly toward their targets, covering
// the distance from where the target last changed in animTime seconds.
// Entries not touched for a couple of frames snap to their target on
// the next use and are garbage collected.
type animationManager struct {
	values map[Id]*animatedValue
}

func (a *animationManager) animate(id Id, frame uint64, dt, animTime, target float32) float32 {
	if a.values == nil {
		a.values = make(map[Id]*animatedValue)
	}
	v := a.values[id]
	if v == nil {
		// First sight starts at the target: no pop-in animation.
		v = &animatedValue{from: target, target: target, value: target}
		a.values[id] = v
	} else if frame-v.lastFrame > staleFrames {
		v.from, v.target, v.value = target, target, target
	}
	v.lastFrame = frame

	if target != v.target {
		v.from = v.value
		v.target = target
	}
	if animTime <= 0 {
		v.value = target
		return target
	}
	span := math32.Abs(v.target - v.from)
	if span < 1e-6 {
		v.value = target
		return target
	}
	step := span * dt / animTime
	if target > v.value {
		v.value = math32.Min(v.value+step, target)
	} else {
		v.value = math32.Max(v.value-step, target)
	}
	return v.value
}

func (a *animationManager) gc(frame uint64) {
	for id, v := range a.values {
		if frame-v.lastFrame > staleFrames {
			delete(a.values, id)
		}
	}
}

// AnimateBool eases between 0 and 1 as target flips, over the style's
// animation time.
func (ctx *Context) AnimateBool(id Id, target bool) float32 {
	t := float32(0)
	if target {
		t = 1
	}
	return ctx.AnimateValue(id, t, ctx.style.AnimationTime)
}

// AnimateValue moves the remembered value for id toward target over
// animTime seconds and returns the current value. While the value is
// still moving a repaint is requested so the animation keeps running.
func (ctx *Context) AnimateValue(id Id, target, animTime float32) float32 {
	m := ctx.mem
	m.mu.Lock()
	v := m.anim.animate(id, m.frame, ctx.input.DT, animTime, target)
	m.mu.Unlock()
	if v != target {
		ctx.RequestRepaint()
	}
	return v
}
