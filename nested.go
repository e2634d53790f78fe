package pullrefresh

// NestedScrollParent receives scroll deltas from a scrollable descendant.
// Deltas are in pixels with positive dy scrolling the content toward its end
// (finger moving up). A Layout is itself a NestedScrollParent and forwards
// what it does not use to its own parent, so layouts can nest.
type NestedScrollParent interface {
	// StartNestedScroll is called when the descendant starts scrolling. It
	// reports whether the parent wants the following deltas.
	StartNestedScroll() bool
	// NestedPreScroll offers dy before the descendant scrolls and returns
	// the part the parent consumed.
	NestedPreScroll(dy int) int
	// NestedScroll reports what the descendant consumed and what it left
	// over. It returns how far the descendant was displaced on screen as a
	// result, positive downward.
	NestedScroll(dyConsumed, dyUnconsumed int) int
	// StopNestedScroll ends the nested scroll.
	StopNestedScroll()
	// NestedPreFling offers a fling velocity before the descendant flings.
	NestedPreFling(vy float64) bool
	// NestedFling reports a descendant fling.
	NestedFling(vy float64, consumed bool) bool
}

var _ NestedScrollParent = (*Layout)(nil)

// SetNestedParent sets the parent that receives the deltas this layout does
// not consume.
func (l *Layout) SetNestedParent(p NestedScrollParent) {
	l.parent = p
}

// StartNestedScroll implements NestedScrollParent. A running return to rest
// is cancelled so the header can be caught mid-flight.
func (l *Layout) StartNestedScroll() bool {
	if l.reentrant("StartNestedScroll") || !l.enabled {
		return false
	}
	if l.interruptible() {
		l.anim.Cancel()
		l.fling = nil
	}
	l.tracker.Reset()
	l.nested = true
	if l.parent != nil {
		l.parent.StartNestedScroll()
	}
	return true
}

// NestedPreScroll implements NestedScrollParent. Scrolling the content
// toward its end first takes the header back up.
func (l *Layout) NestedPreScroll(dy int) int {
	if l.reentrant("NestedPreScroll") {
		return 0
	}
	consumed := 0
	if dy > 0 && l.offset > 0 && l.interruptible() {
		consumed = min(dy, l.offset)
		l.moveTarget(-consumed)
	}
	if rest := dy - consumed; rest != 0 && l.parent != nil {
		consumed += l.parent.NestedPreScroll(rest)
	}
	return consumed
}

// NestedScroll implements NestedScrollParent. Overscroll past the top of the
// content pulls the header down with the usual resistance.
func (l *Layout) NestedScroll(dyConsumed, dyUnconsumed int) int {
	if l.reentrant("NestedScroll") {
		return 0
	}
	shifted := 0
	if l.parent != nil {
		shifted = l.parent.NestedScroll(dyConsumed, dyUnconsumed)
	}
	dy := dyUnconsumed + shifted
	if dy < 0 && !l.canChildScrollUp() && l.offset < l.m.maxDrag && l.interruptible() {
		delta := clampDelta(Resist(-dy, l.offset, l.m.maxDrag, l.cfg.DragRate), l.offset, l.m.maxDrag)
		l.moveTarget(delta)
		if !l.cfg.PinContent {
			shifted += delta
		}
	}
	return shifted
}

// StopNestedScroll implements NestedScrollParent. A displaced header settles
// the same way it does after a drag.
func (l *Layout) StopNestedScroll() {
	if l.reentrant("StopNestedScroll") {
		return
	}
	l.nested = false
	if (l.offset > 0 || l.state != StateIdle) && l.interruptible() {
		l.finishSpinner(l.offset)
	}
	if l.parent != nil {
		l.parent.StopNestedScroll()
	}
}

// NestedPreFling implements NestedScrollParent by forwarding to the parent.
func (l *Layout) NestedPreFling(vy float64) bool {
	if l.parent != nil {
		return l.parent.NestedPreFling(vy)
	}
	return false
}

// NestedFling implements NestedScrollParent by forwarding to the parent.
func (l *Layout) NestedFling(vy float64, consumed bool) bool {
	if l.parent != nil {
		return l.parent.NestedFling(vy, consumed)
	}
	return false
}
