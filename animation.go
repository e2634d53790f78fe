package pullrefresh

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MaxOffsetAnimationDuration caps every offset animation.
const MaxOffsetAnimationDuration = 600 * time.Millisecond

// offsetEase decelerates toward the target. It matches a decelerate curve
// with factor 2 and never overshoots.
var offsetEase ease.TweenFunc = ease.OutQuart

// OffsetAnimator drives the header offset toward a target with an eased
// tween. At most one job runs at a time; starting a new job supersedes the
// old one. Values are delivered through the apply callback given to
// NewOffsetAnimator.
//
// There is no global animation manager: the owner calls Update each frame.
type OffsetAnimator struct {
	apply func(value int)
	job   *offsetJob
}

type offsetJob struct {
	tween      *gween.Tween
	from, to   int
	onComplete func()
}

// NewOffsetAnimator creates an animator that writes each animated value
// through apply.
func NewOffsetAnimator(apply func(value int)) *OffsetAnimator {
	return &OffsetAnimator{apply: apply}
}

// Animate starts a job from the live offset to target over duration (capped
// at MaxOffsetAnimationDuration). If from already equals target, any running
// job is cancelled and onComplete runs synchronously. A non-positive duration
// jumps straight to target and completes synchronously.
//
// When the superseded job was heading to the same target and onComplete is
// nil, the superseded completion carries over to the new job.
func (a *OffsetAnimator) Animate(from, target int, duration time.Duration, onComplete func()) {
	prev := a.job
	a.job = nil
	if prev != nil && prev.to == target && onComplete == nil {
		onComplete = prev.onComplete
	}

	if from == target {
		if onComplete != nil {
			onComplete()
		}
		return
	}

	duration = min(duration, MaxOffsetAnimationDuration)
	if duration <= 0 {
		a.apply(target)
		if onComplete != nil {
			onComplete()
		}
		return
	}

	a.job = &offsetJob{
		tween:      gween.New(float32(from), float32(target), float32(duration.Seconds()), offsetEase),
		from:       from,
		to:         target,
		onComplete: onComplete,
	}
}

// Update advances the running job by dt seconds. The final tick lands exactly
// on the target before the completion callback runs.
func (a *OffsetAnimator) Update(dt float32) {
	job := a.job
	if job == nil {
		return
	}
	v, finished := job.tween.Update(dt)
	value := int(math.Round(float64(v)))
	if finished {
		value = job.to
		a.job = nil
	}
	a.apply(value)
	if finished && job.onComplete != nil {
		job.onComplete()
	}
}

// Cancel stops the running job without running its completion.
func (a *OffsetAnimator) Cancel() {
	a.job = nil
}

// Running reports whether a job is in flight.
func (a *OffsetAnimator) Running() bool {
	return a.job != nil
}

// Target returns the running job's target and whether a job is running.
func (a *OffsetAnimator) Target() (int, bool) {
	if a.job == nil {
		return 0, false
	}
	return a.job.to, true
}

// settleDuration computes how long an offset animation covering distance
// pixels should take. A positive velocity (px/s) gives a velocity-matched
// duration; otherwise the duration scales with distance relative to the
// header height. The result is capped at MaxOffsetAnimationDuration.
func settleDuration(distance, headerHeight int, velocity float64) time.Duration {
	distance = abs(distance)
	var d time.Duration
	if velocity > 0 {
		d = 3 * time.Duration(math.Round(1000*float64(distance)/velocity)) * time.Millisecond
	} else {
		ratio := 0.0
		if headerHeight > 0 {
			ratio = float64(distance) / float64(headerHeight)
		}
		d = time.Duration((ratio + 1) * 150 * float64(time.Millisecond))
	}
	return min(d, MaxOffsetAnimationDuration)
}
