package pullrefresh

import "math"

// DefaultDragRate is the linear damping applied when the user pushes the
// header back up.
const DefaultDragRate = 0.5

// Resist maps a raw vertical drag delta into the offset delta the layout
// should apply. Pushing back up (dy < 0) is damped linearly by rate. Pulling
// down meets resistance that grows with the current offset and reaches full
// stop at maxDrag, but the result never drops below 1 so a sustained pull
// keeps advancing until the caller's clamp takes over.
//
// Resist has no side effects. Callers clamp the result with clampDelta.
func Resist(dy, offset, maxDrag int, rate float64) int {
	if dy < 0 {
		return int(float64(dy) * rate)
	}
	percent := 1.0
	if maxDrag > 0 {
		percent = math.Min(1, math.Abs(float64(offset))/float64(maxDrag))
	}
	return int(math.Max(float64(dy)*(1-percent), 1))
}

// clampDelta trims delta so that offset+delta stays within [0, maxDrag].
func clampDelta(delta, offset, maxDrag int) int {
	if offset+delta < 0 {
		delta = -offset
	}
	if offset+delta > maxDrag {
		delta = maxDrag - offset
	}
	return delta
}
