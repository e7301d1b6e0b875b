package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// targetSprite is the drawn pose of the target. It eases towards the logical
// pose after a relocation; the hit test always uses the logical pose.
type targetSprite struct {
	pose   Pose
	to     Pose
	tweens [3]*gween.Tween
	fields [3]*float64
	active bool
}

func newTargetSprite(pose Pose) *targetSprite {
	s := &targetSprite{pose: pose}
	s.fields = [3]*float64{&s.pose.Position.X, &s.pose.Position.Y, &s.pose.Rotation}
	return s
}

// moveTo starts easing to the given pose. A non-positive duration snaps.
func (s *targetSprite) moveTo(to Pose, seconds float64) {
	if seconds <= 0 {
		s.pose = to
		s.active = false
		return
	}
	s.to = to
	d := float32(seconds)
	s.tweens[0] = gween.New(float32(s.pose.Position.X), float32(to.Position.X), d, ease.OutCubic)
	s.tweens[1] = gween.New(float32(s.pose.Position.Y), float32(to.Position.Y), d, ease.OutCubic)
	s.tweens[2] = gween.New(float32(s.pose.Rotation), float32(to.Rotation), d, ease.OutCubic)
	s.active = true
}

// update advances the tweens by dt seconds
func (s *targetSprite) update(dt float64) {
	if !s.active {
		return
	}
	done := true
	for i, tw := range s.tweens {
		val, finished := tw.Update(float32(dt))
		*s.fields[i] = float64(val)
		if !finished {
			done = false
		}
	}
	if done {
		s.pose = s.to
		s.active = false
	}
}
