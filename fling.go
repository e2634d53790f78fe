package pullrefresh

import "math"

// Ballistic deceleration: the decay grows with speed so fast flings bleed off
// quickly while slow ones coast.
const (
	flingDecelBase   = 2200.0 // px/s²
	flingDecelFactor = 0.385  // 1/s, scales with |v|
	flingStopSpeed   = 5.0    // px/s
	flingMaxStep     = 0.032  // s, longest frame a fling integrates at once
)

// flingTrajectory is a single fling measured relative to the offset at
// release. Its position is bounded to [min, max].
type flingTrajectory struct {
	sign     float64
	speed    float64 // |v0|
	min, max float64
	elapsed  float64
	duration float64 // time until the speed drops below flingStopSpeed
	position float64
}

// newFlingTrajectory creates a fling with initial velocity v (px/s, positive
// downward) bounded to [min, max] relative to its start.
func newFlingTrajectory(v, min, max float64) *flingTrajectory {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	f := &flingTrajectory{speed: math.Abs(v), min: min, max: max, sign: 1}
	if v < 0 {
		f.sign = -1
	}
	if f.speed > flingStopSpeed {
		k := flingDecelFactor
		a := flingDecelBase / k
		f.duration = math.Log((f.speed+a)/(flingStopSpeed+a)) / k
	}
	return f
}

// distanceAt returns the unbounded signed distance travelled after t seconds.
// The speed obeys dv/dt = -(base + factor·v), which integrates in closed form.
func (f *flingTrajectory) distanceAt(t float64) float64 {
	if t > f.duration {
		t = f.duration
	}
	k := flingDecelFactor
	a := flingDecelBase / k
	x := (f.speed+a)*(1-math.Exp(-k*t))/k - a*t
	return f.sign * x
}

// final returns where the fling would come to rest, clamped to its bounds.
func (f *flingTrajectory) final() float64 {
	return clampFloat(f.distanceAt(f.duration), f.min, f.max)
}

// degenerate reports whether the fling would not move the offset by a whole
// pixel.
func (f *flingTrajectory) degenerate() bool {
	return math.Round(f.final()) == 0
}

// advance integrates dt seconds (capped at flingMaxStep) and returns the new
// bounded position and whether the fling has finished.
func (f *flingTrajectory) advance(dt float64) (float64, bool) {
	if dt > flingMaxStep {
		dt = flingMaxStep
	}
	if dt < 0 {
		dt = 0
	}
	f.elapsed += dt
	raw := f.distanceAt(f.elapsed)
	f.position = clampFloat(raw, f.min, f.max)
	done := f.elapsed >= f.duration || raw != f.position
	return f.position, done
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
