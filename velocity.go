package pullrefresh

import (
	"math"
	"time"
)

const (
	velocityHistory = 20                     // samples kept in the ring
	velocityHorizon = 100 * time.Millisecond // only samples this recent count
	velocityMaxGap  = 40 * time.Millisecond  // a longer pause means the pointer stopped
)

type velocitySample struct {
	t time.Duration
	y float64
}

// VelocityTracker accumulates recent (time, y) samples of a single pointer
// and estimates its vertical velocity with a least-squares line fit. The zero
// value is ready to use.
type VelocityTracker struct {
	samples [velocityHistory]velocitySample
	head    int // index of the newest sample
	count   int
}

// Add records a sample. Samples must arrive in non-decreasing time order;
// an older sample resets the tracker.
func (v *VelocityTracker) Add(t time.Duration, y float64) {
	if v.count > 0 && t < v.samples[v.head].t {
		v.Reset()
	}
	v.head = (v.head + 1) % velocityHistory
	v.samples[v.head] = velocitySample{t: t, y: y}
	if v.count < velocityHistory {
		v.count++
	}
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.head = 0
	v.count = 0
}

// Velocity returns the estimated vertical velocity in pixels per second.
// Positive values move downward. Fewer than two usable samples yield 0.
func (v *VelocityTracker) Velocity() float64 {
	if v.count < 2 {
		return 0
	}
	newest := v.samples[v.head]

	var n, sumT, sumY, sumTT, sumTY float64
	prevT := newest.t
	for i := 0; i < v.count; i++ {
		s := v.samples[(v.head-i+velocityHistory)%velocityHistory]
		if newest.t-s.t > velocityHorizon || prevT-s.t > velocityMaxGap {
			break
		}
		prevT = s.t
		// Times relative to the newest sample keep the sums small.
		t := (s.t - newest.t).Seconds()
		n++
		sumT += t
		sumY += s.y
		sumTT += t * t
		sumTY += t * s.y
	}
	if n < 2 {
		return 0
	}
	denom := n*sumTT - sumT*sumT
	if denom == 0 || math.IsNaN(denom) {
		return 0
	}
	return (n*sumTY - sumT*sumY) / denom
}
