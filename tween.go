package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	SLIDE_DURATION = 0.08
	PULSE_DURATION = 0.5
	PULSE_LOW      = 0.45
)

type Action struct {
	nexts    []func(d *Driver)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next queues t to start once the tween owning a finishes.
func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	if a.nexts == nil {
		a.nexts = make([]func(d *Driver), 0)
	}
	a.nexts = append(a.nexts,
		func(d *Driver) {
			d.Tweens[t] = action
		})
	return &action
}

func (d *Driver) updateTweens(dt float32) {
	for t, a := range d.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(d)
			}
			delete(d.Tweens, t)
		}
	}
}

// slidePlayer moves the drawn player from its current pixel position to
// (x, y).
func (d *Driver) slidePlayer(x, y float64) {
	if d.slide != nil {
		delete(d.Tweens, d.slide)
	}
	fromX, fromY := d.playerX, d.playerY
	d.slide = gween.New(0, 1, SLIDE_DURATION, ease.OutQuad)
	a := Action{
		onChange: func(k float32) {
			d.playerX = fromX + (x-fromX)*float64(k)
			d.playerY = fromY + (y-fromY)*float64(k)
		},
	}
	a.addOnFinish(func() { d.slide = nil })
	d.Tweens[d.slide] = a
}

// pulseScanner fades the scanner overlay down and up again, forever.
func (d *Driver) pulseScanner() {
	down := gween.New(1, PULSE_LOW, PULSE_DURATION, ease.InOutSine)
	up := gween.New(PULSE_LOW, 1, PULSE_DURATION, ease.InOutSine)
	set := func(v float32) { d.scanAlpha = float64(v) }

	first := Action{onChange: set}
	second := first.next(up)
	second.onChange = set
	second.addOnFinish(d.pulseScanner)
	d.Tweens[down] = first
}
