package pullrefresh

import "testing"

// fakeParent records the nested scroll calls it receives.
type fakeParent struct {
	accept   bool
	preTake  int
	shift    int
	started  int
	stopped  int
	pre      []int
	scrolled [][2]int
	flings   []float64
}

func (p *fakeParent) StartNestedScroll() bool {
	p.started++
	return p.accept
}

func (p *fakeParent) NestedPreScroll(dy int) int {
	p.pre = append(p.pre, dy)
	return min(dy, p.preTake)
}

func (p *fakeParent) NestedScroll(dyConsumed, dyUnconsumed int) int {
	p.scrolled = append(p.scrolled, [2]int{dyConsumed, dyUnconsumed})
	return p.shift
}

func (p *fakeParent) StopNestedScroll() { p.stopped++ }

func (p *fakeParent) NestedPreFling(vy float64) bool {
	p.flings = append(p.flings, vy)
	return true
}

func (p *fakeParent) NestedFling(vy float64, _ bool) bool {
	p.flings = append(p.flings, vy)
	return false
}

func TestNestedOverscrollPullsHeader(t *testing.T) {
	l, h, _ := newTestLayout(t)
	if !l.StartNestedScroll() {
		t.Fatal("StartNestedScroll = false")
	}
	if shift := l.NestedScroll(0, -20); shift != 20 {
		t.Errorf("shift = %d, want 20", shift)
	}
	if l.Offset() != 20 || l.State() != StatePullToRefresh {
		t.Errorf("offset=%d state=%v", l.Offset(), l.State())
	}
	if h.readies != 1 {
		t.Errorf("readies = %d, want 1", h.readies)
	}

	// Scrolling back takes the header up first, never more than it shows.
	if got := l.NestedPreScroll(30); got != 20 {
		t.Errorf("NestedPreScroll(30) = %d, want 20", got)
	}
	if l.Offset() != 0 {
		t.Errorf("offset = %d, want 0", l.Offset())
	}
	if got := l.NestedPreScroll(10); got != 0 {
		t.Errorf("NestedPreScroll at rest = %d, want 0", got)
	}
}

func TestNestedPreScrollIgnoresDownward(t *testing.T) {
	l, _, _ := newTestLayout(t)
	l.StartNestedScroll()
	l.NestedScroll(0, -20)
	if got := l.NestedPreScroll(-10); got != 0 {
		t.Errorf("NestedPreScroll(-10) = %d, want 0", got)
	}
	if l.Offset() != 20 {
		t.Errorf("offset = %d, want 20", l.Offset())
	}
}

func TestNestedPinnedContent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PinContent = true
	l, err := New(cfg, &recordingHeader{height: testHeaderHeight}, &scrollContent{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.StartNestedScroll()
	if shift := l.NestedScroll(0, -20); shift != 0 {
		t.Errorf("shift = %d, want 0 with pinned content", shift)
	}
	if l.Offset() != 20 {
		t.Errorf("offset = %d, want 20", l.Offset())
	}
	if r := l.ContentRect(); r.Y != 0 {
		t.Errorf("ContentRect().Y = %v, want 0", r.Y)
	}
}

func TestNestedChildCanScrollUp(t *testing.T) {
	l, _, _ := newTestLayout(t)
	l.SetCanScrollUp(func() bool { return true })
	l.StartNestedScroll()
	if shift := l.NestedScroll(0, -20); shift != 0 || l.Offset() != 0 {
		t.Errorf("shift=%d offset=%d, want no pull", shift, l.Offset())
	}
}

func TestNestedStopBelowTriggerReturns(t *testing.T) {
	l, h, _ := newTestLayout(t)
	l.StartNestedScroll()
	l.NestedScroll(0, -20)
	l.StopNestedScroll()
	settle(l)

	if l.Offset() != 0 || l.State() != StateIdle {
		t.Errorf("offset=%d state=%v", l.Offset(), l.State())
	}
	if h.resets != 1 {
		t.Errorf("resets = %d, want 1", h.resets)
	}
}

func TestNestedStopPastTriggerRefreshes(t *testing.T) {
	l, _, _ := newTestLayout(t)
	refreshed := 0
	l.SetOnRefresh(func() { refreshed++ })

	l.StartNestedScroll()
	for i := 0; l.Offset() <= l.TriggerDistance(); i++ {
		if i > 50 {
			t.Fatalf("offset stuck at %d", l.Offset())
		}
		l.NestedScroll(0, -20)
	}
	if l.State() != StateReleaseToRefresh {
		t.Fatalf("State = %v, want release_to_refresh", l.State())
	}
	l.StopNestedScroll()
	if l.State() != StateReleased {
		t.Errorf("State = %v, want released", l.State())
	}
	settle(l)

	if l.State() != StateRefreshing || l.Offset() != testHeaderHeight {
		t.Errorf("state=%v offset=%d", l.State(), l.Offset())
	}
	if refreshed != 1 {
		t.Errorf("onRefresh ran %d times, want 1", refreshed)
	}
}

func TestNestedIgnoredWhileReleased(t *testing.T) {
	l, _, _ := newTestLayout(t)
	l.StartNestedScroll()
	for l.Offset() <= l.TriggerDistance() {
		l.NestedScroll(0, -20)
	}
	l.StopNestedScroll()
	before := l.Offset()

	l.StartNestedScroll()
	if shift := l.NestedScroll(0, -20); shift != 0 || l.Offset() != before {
		t.Errorf("shift=%d offset=%d, want untouched %d", shift, l.Offset(), before)
	}
	if !l.Animating() {
		t.Error("commit settle was cancelled")
	}
}

func TestNestedBlocksPointer(t *testing.T) {
	l, _, _ := newTestLayout(t)
	l.StartNestedScroll()
	if l.HandlePointer(PointerEvent{Action: PointerDown, Y: 100}) {
		t.Error("pointer consumed during a nested scroll")
	}
	l.StopNestedScroll()
	g := press(l)
	if !g.move(20) || l.Offset() == 0 {
		t.Error("drag refused after the nested scroll ended")
	}
}

func TestNestedDisabled(t *testing.T) {
	l, _, _ := newTestLayout(t)
	l.SetEnabled(false)
	if l.StartNestedScroll() {
		t.Error("disabled layout accepted a nested scroll")
	}
}

func TestNestedForwardsToParent(t *testing.T) {
	l, _, _ := newTestLayout(t)
	p := &fakeParent{accept: true, preTake: 4}
	l.SetNestedParent(p)

	l.StartNestedScroll()
	if p.started != 1 {
		t.Errorf("parent started %d times", p.started)
	}
	if got := l.NestedPreScroll(10); got != 4 {
		t.Errorf("NestedPreScroll = %d, want the parent's 4", got)
	}
	if shift := l.NestedScroll(5, -3); shift != 3 {
		t.Errorf("shift = %d, want 3", shift)
	}
	if len(p.scrolled) != 1 || p.scrolled[0] != [2]int{5, -3} {
		t.Errorf("parent scrolled %v", p.scrolled)
	}
	if !l.NestedPreFling(-800) || l.NestedFling(-800, false) {
		t.Error("fling results not forwarded")
	}
	if len(p.flings) != 2 {
		t.Errorf("parent flings %v", p.flings)
	}
	l.StopNestedScroll()
	if p.stopped != 1 {
		t.Errorf("parent stopped %d times", p.stopped)
	}
}

func TestNestedParentShiftCountsAsOverscroll(t *testing.T) {
	l, _, _ := newTestLayout(t)
	// The parent moved the content up 20px, turning a 20px downward
	// overscroll into none.
	l.SetNestedParent(&fakeParent{accept: true, shift: 20})
	l.StartNestedScroll()
	if shift := l.NestedScroll(0, -20); shift != 20 || l.Offset() != 0 {
		t.Errorf("shift=%d offset=%d, want 20 and 0", shift, l.Offset())
	}
}

func TestNestedLayouts(t *testing.T) {
	outer, _, _ := newTestLayout(t)
	inner, _, _ := newTestLayout(t)
	inner.SetNestedParent(outer)

	inner.StartNestedScroll()
	if shift := inner.NestedScroll(0, -20); shift != 20 {
		t.Errorf("shift = %d, want 20", shift)
	}
	if outer.Offset() != 20 || inner.Offset() != 0 {
		t.Errorf("outer=%d inner=%d, want 20 and 0", outer.Offset(), inner.Offset())
	}
	inner.StopNestedScroll()
	settle(outer)
	if outer.Offset() != 0 || outer.State() != StateIdle {
		t.Errorf("outer offset=%d state=%v", outer.Offset(), outer.State())
	}
}
