package pullrefresh

import (
	"context"
	"errors"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Errors returned by New.
var (
	ErrTooManyChildren = errors.New("pullrefresh: more than one content child")
	ErrNoHeader        = errors.New("pullrefresh: no header child")
	ErrNoContent       = errors.New("pullrefresh: no content child")
)

// Header is the indicator shown above the content. The layout calls it on
// every offset change and state transition. Calls that would mutate the
// layout are ignored while a Header method runs.
type Header interface {
	// OnReady fires once per gesture, when the header first leaves rest.
	OnReady(l *Layout)
	// OnReset fires when the header has settled back to idle.
	OnReset(l *Layout)
	// OnOffsetChanged fires after every offset change, including
	// zero-distance animation ticks. progress is offset / max drag distance.
	OnOffsetChanged(l *Layout, offset int, progress float64, state State)
	// OnStateChanged fires on every state transition.
	OnStateChanged(l *Layout, state State)
}

// HeaderSizer is implemented by headers that know their own height.
type HeaderSizer interface {
	HeaderHeight() int
}

// ScrollUpper is implemented by content that can report whether it can still
// scroll toward its top.
type ScrollUpper interface {
	CanScrollUp() bool
}

// Layout hosts a header and one content child and implements pull to
// refresh over them. It is single-threaded: all methods must be called from
// the goroutine that runs Update.
type Layout struct {
	cfg Config
	m   metrics

	header  Header
	content any

	canScrollUp func() bool
	onRefresh   func()
	parent      NestedScrollParent
	sink        EventSink
	clock       clockz.Clock
	ctx         context.Context
	debug       bool

	tracker   *GestureTracker
	anim      *OffsetAnimator
	fling     *flingTrajectory
	flingBase int

	width, height float64
	headerHeight  int

	offset     int
	state      State
	refreshing bool
	notify     bool // fire onRefresh when the commit settles
	enabled    bool
	nested     bool      // a nested scroll is in progress
	resetAt    time.Time // end of the outcome dwell; zero when none is pending
	inNotify   int
}

// New creates a Layout over a header and a content child. The first child
// implementing Header becomes the header; exactly one other child must be
// present.
func New(cfg Config, children ...any) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var header Header
	var content any
	others := 0
	for _, c := range children {
		if h, ok := c.(Header); ok && header == nil {
			header = h
			continue
		}
		others++
		content = c
	}
	switch {
	case others > 1:
		return nil, ErrTooManyChildren
	case header == nil:
		return nil, ErrNoHeader
	case content == nil:
		return nil, ErrNoContent
	}

	l := &Layout{
		cfg:     cfg,
		m:       cfg.resolve(),
		header:  header,
		content: content,
		clock:   clockz.RealClock,
		ctx:     context.Background(),
		enabled: !cfg.Disabled,
	}
	l.anim = NewOffsetAnimator(func(v int) { l.moveTarget(v - l.offset) })
	l.tracker = NewGestureTracker(l.m.slop, l.canChildScrollUp)
	l.tracker.Accept = func(dy int) bool { return dy > 0 || l.offset > 0 }
	if hs, ok := header.(HeaderSizer); ok {
		l.headerHeight = hs.HeaderHeight()
	}
	return l, nil
}

// --- Host bindings ---

// SetOnRefresh sets the callback run when a gesture-committed refresh has
// settled at the refreshing height. The callback may call SetRefreshComplete
// directly.
func (l *Layout) SetOnRefresh(fn func()) {
	l.onRefresh = fn
}

// SetCanScrollUp overrides how the layout asks whether the content can still
// scroll toward its top. Nil falls back to the content's ScrollUpper.
func (l *Layout) SetCanScrollUp(fn func() bool) {
	l.canScrollUp = fn
}

// SetClock replaces the clock used for the outcome dwell.
func (l *Layout) SetClock(c clockz.Clock) {
	l.clock = c
}

// SetContext sets the context passed with emitted signals.
func (l *Layout) SetContext(ctx context.Context) {
	l.ctx = ctx
}

// SetHeaderHeight sets the measured header height in pixels.
func (l *Layout) SetHeaderHeight(px int) {
	l.headerHeight = max(px, 0)
}

// Resize sets the layout bounds and re-measures a sizing header.
func (l *Layout) Resize(width, height float64) {
	l.width, l.height = width, height
	if hs, ok := l.header.(HeaderSizer); ok {
		l.headerHeight = max(hs.HeaderHeight(), 0)
	}
}

// ApplyConfig validates cfg and applies it. An offset beyond the new max drag
// distance is pulled back to it.
func (l *Layout) ApplyConfig(cfg Config) error {
	if l.reentrant("ApplyConfig") {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		capitan.Emit(l.ctx, ConfigRejected, KeyError.Field(err.Error()))
		l.debugf("config rejected: %v", err)
		return err
	}
	l.cfg = cfg
	l.m = cfg.resolve()
	l.tracker.Slop = l.m.slop
	capitan.Emit(l.ctx, ConfigApplied)
	l.debugf("config applied | max: %d | trigger: %d", l.m.maxDrag, l.m.trigger)
	if cfg.Disabled == l.enabled {
		l.SetEnabled(!cfg.Disabled)
	}
	if l.offset > l.m.maxDrag {
		l.moveTarget(l.m.maxDrag - l.offset)
	}
	return nil
}

// Config returns the applied configuration.
func (l *Layout) Config() Config { return l.cfg }

// --- Queries ---

// Offset returns the header displacement in pixels.
func (l *Layout) Offset() int { return l.offset }

// State returns the refresh state.
func (l *Layout) State() State { return l.state }

// Progress returns offset / max drag distance.
func (l *Layout) Progress() float64 {
	if l.m.maxDrag <= 0 {
		return 0
	}
	return float64(l.offset) / float64(l.m.maxDrag)
}

// IsRefreshing reports whether a refresh is in progress.
func (l *Layout) IsRefreshing() bool { return l.refreshing }

// Enabled reports whether the layout reacts to input.
func (l *Layout) Enabled() bool { return l.enabled }

// Animating reports whether an offset animation or fling is running.
func (l *Layout) Animating() bool { return l.anim.Running() || l.fling != nil }

// MaxDragDistance returns the resolved max drag distance in pixels.
func (l *Layout) MaxDragDistance() int { return l.m.maxDrag }

// TriggerDistance returns the resolved trigger distance in pixels.
func (l *Layout) TriggerDistance() int { return l.m.trigger }

// HeaderHeight returns the measured header height in pixels.
func (l *Layout) HeaderHeight() int { return l.headerHeight }

// Header returns the header child.
func (l *Layout) Header() Header { return l.header }

// Content returns the content child.
func (l *Layout) Content() any { return l.content }

// HeaderRect returns where the header is placed: its bottom edge follows the
// offset, shifted by the configured header offset.
func (l *Layout) HeaderRect() Rect {
	top := l.offset - l.headerHeight + l.m.headerOffset
	return Rect{Y: float64(top), Width: l.width, Height: float64(l.headerHeight)}
}

// ContentRect returns where the content is placed. Pinned content stays put
// while the header slides over it.
func (l *Layout) ContentRect() Rect {
	top := 0.0
	if !l.cfg.PinContent {
		top = float64(l.offset)
	}
	return Rect{Y: top, Width: l.width, Height: max(l.height-top, 0)}
}

// --- Input ---

// HandlePointer feeds a raw pointer event to the layout and reports whether
// the layout consumed it. Unconsumed events belong to the content.
func (l *Layout) HandlePointer(ev PointerEvent) bool {
	if l.reentrant("HandlePointer") {
		return false
	}
	if !l.enabled || l.nested || !l.interruptible() {
		l.tracker.Reset()
		return false
	}

	d := l.tracker.Handle(ev)
	if ev.Action == PointerDown && l.tracker.Active() != NoPointer {
		l.anim.Cancel()
		l.fling = nil
	}

	switch d.Phase {
	case DragStart, DragMove:
		if d.Phase == DragStart {
			l.debugf("drag start | pointer: %d | offset: %d", ev.ID, l.offset)
		}
		if d.Delta != 0 {
			dy := Resist(d.Delta, l.offset, l.m.maxDrag, l.cfg.DragRate)
			l.moveTarget(clampDelta(dy, l.offset, l.m.maxDrag))
		}
		return true
	case DragRelease:
		if d.Dragged {
			l.debugf("release | offset: %d | velocity: %.1f", l.offset, d.Velocity)
			l.startFling(d.Velocity)
			return true
		}
		if l.offset > 0 || l.state != StateIdle {
			l.finishSpinner(l.offset)
		}
		return false
	case DragCancel:
		// A press may have caught the header mid-settle.
		if !d.Dragged && l.offset == 0 && l.state == StateIdle {
			return false
		}
		l.debugf("cancel | offset: %d", l.offset)
		l.settleCancelled()
		return d.Dragged
	}
	return l.tracker.Dragging()
}

// interruptible reports whether gestures may take over the offset. Commit
// settles, outcome dwells, and programmatic stops run to completion.
func (l *Layout) interruptible() bool {
	switch l.state {
	case StateReleased, StateSuccess, StateFailure:
		return false
	case StateRefreshing:
		return l.refreshing
	}
	return true
}

func (l *Layout) canChildScrollUp() bool {
	if l.canScrollUp != nil {
		return l.canScrollUp()
	}
	if su, ok := l.content.(ScrollUpper); ok {
		return su.CanScrollUp()
	}
	return false
}

// --- Frame update ---

// Update advances the fling, the offset animation, and the outcome dwell by
// dt seconds. Call it once per frame.
func (l *Layout) Update(dt float32) {
	if l.reentrant("Update") {
		return
	}
	if l.fling != nil {
		l.stepFling(float64(dt))
	}
	l.anim.Update(dt)
	if !l.resetAt.IsZero() && !l.clock.Now().Before(l.resetAt) {
		l.resetAt = time.Time{}
		l.debugf("dwell elapsed, returning to rest")
		l.animateTo(0, 0, l.onSettled)
	}
}

func (l *Layout) startFling(velocity float64) {
	f := newFlingTrajectory(velocity, -float64(l.headerHeight), 0)
	if f.degenerate() {
		l.finishSpinner(l.offset)
		return
	}
	l.fling = f
	l.flingBase = l.offset
}

func (l *Layout) stepFling(dt float64) {
	pos, done := l.fling.advance(dt)
	target := min(max(l.flingBase+int(pos), 0), l.m.maxDrag)
	l.moveTarget(target - l.offset)
	if done {
		l.fling = nil
		l.finishSpinner(l.offset)
	}
}

// --- Refresh control ---

// SetRefreshing starts or stops a refresh programmatically. Starting never
// calls the onRefresh callback. With animated false the header jumps.
func (l *Layout) SetRefreshing(refreshing, animated bool) {
	if l.reentrant("SetRefreshing") {
		return
	}
	if refreshing == l.refreshing {
		return
	}
	l.fling = nil
	if refreshing {
		if l.state == StateSuccess || l.state == StateFailure {
			l.reset()
		}
		l.resetAt = time.Time{}
		l.refreshing = true
		l.notify = false
		l.debugf("refresh started programmatically")
		l.animateTarget(l.refreshTarget(), animated, l.onSettled)
		return
	}
	l.refreshing = false
	l.notify = false
	l.debugf("refresh stopped programmatically")
	l.animateTarget(0, animated, l.onSettled)
}

// SetRefreshComplete ends a refresh and shows the outcome for the configured
// dwell before returning to rest. It does nothing when no refresh is in
// progress.
func (l *Layout) SetRefreshComplete(success bool) {
	if l.reentrant("SetRefreshComplete") {
		return
	}
	if !l.refreshing {
		return
	}
	l.refreshing = false
	l.notify = false
	dwell := l.cfg.SuccessShowDuration
	outcome := "success"
	if success {
		l.changeState(StateSuccess)
	} else {
		dwell = l.cfg.FailureShowDuration
		outcome = "failure"
		l.changeState(StateFailure)
	}
	capitan.Emit(l.ctx, RefreshCompleted,
		KeyOutcome.Field(outcome),
		KeyDwell.Field(dwell),
		KeyOffset.Field(l.offset))
	l.emitEvent(EventComplete, l.state, success)
	l.resetAt = l.clock.Now().Add(dwell)
}

// SetEnabled enables or disables the layout. Disabling resets it to rest
// immediately.
func (l *Layout) SetEnabled(enabled bool) {
	if l.reentrant("SetEnabled") {
		return
	}
	if enabled == l.enabled {
		return
	}
	l.enabled = enabled
	if !enabled {
		l.tracker.Reset()
		l.reset()
	}
}

// Close resets the layout to rest. Call it when the host discards the layout.
func (l *Layout) Close() {
	if l.reentrant("Close") {
		return
	}
	l.tracker.Reset()
	l.nested = false
	l.reset()
}

// --- Internals ---

// refreshTarget is the offset held while refreshing.
func (l *Layout) refreshTarget() int {
	h := l.m.refreshingHeight
	if h == 0 {
		h = l.headerHeight
	}
	return min(h, l.m.maxDrag)
}

func (l *Layout) animateTo(target int, velocity float64, done func()) {
	d := settleDuration(target-l.offset, l.headerHeight, velocity)
	l.anim.Animate(l.offset, target, d, done)
}

func (l *Layout) animateTarget(target int, animated bool, done func()) {
	if animated {
		l.animateTo(target, 0, done)
		return
	}
	l.anim.Animate(l.offset, target, 0, done)
}

// finishSpinner decides where the header settles after a drag, fling, or
// nested scroll ends at offset.
func (l *Layout) finishSpinner(offset int) {
	if offset > l.m.trigger {
		if !l.refreshing {
			l.refreshing = true
			l.notify = true
			l.changeState(StateReleased)
			l.notifyOffset()
			l.animateTo(l.refreshTarget(), 0, l.onSettled)
			return
		}
		var done func()
		if l.state == StateReleased {
			done = l.onSettled
		}
		l.animateTo(l.refreshTarget(), 0, done)
		return
	}
	if !l.refreshing {
		l.animateTo(0, 0, l.onSettled)
		return
	}
	if l.state == StateReleased {
		l.animateTo(l.refreshTarget(), 0, l.onSettled)
	}
}

// settleCancelled returns the header after a platform cancel without
// committing a refresh.
func (l *Layout) settleCancelled() {
	if l.refreshing {
		l.animateTo(l.refreshTarget(), 0, nil)
		return
	}
	l.animateTo(0, 0, l.onSettled)
}

// onSettled runs when a settle animation lands. It is the single completion
// for commits, programmatic starts, and returns to rest.
func (l *Layout) onSettled() {
	if !l.refreshing {
		l.reset()
		return
	}
	l.changeState(StateRefreshing)
	l.notifyOffset()
	if !l.notify {
		return
	}
	l.notify = false
	capitan.Emit(l.ctx, RefreshTriggered, KeyOffset.Field(l.offset))
	l.emitEvent(EventRefresh, l.state, false)
	if l.onRefresh != nil {
		l.onRefresh()
	}
}

// reset returns to rest immediately: offset 0, state Idle.
func (l *Layout) reset() {
	l.anim.Cancel()
	l.fling = nil
	l.resetAt = time.Time{}
	l.refreshing = false
	l.notify = false
	l.offset = 0
	l.changeState(StateIdle)
	l.notifyOffset()
	l.callHeader(func(h Header) { h.OnReset(l) })
	capitan.Emit(l.ctx, RefreshReset)
	l.emitEvent(EventReset, l.state, false)
}

// moveTarget shifts the offset by delta and notifies the header. While
// dragging it also derives the state from the trigger distance.
func (l *Layout) moveTarget(delta int) {
	if l.offset == 0 && delta > 0 && !l.refreshing && l.state == StateIdle {
		l.callHeader(func(h Header) { h.OnReady(l) })
		capitan.Emit(l.ctx, RefreshReady)
		l.emitEvent(EventReady, l.state, false)
	}
	l.offset += delta
	if !l.refreshing {
		switch l.state {
		case StateIdle, StatePullToRefresh, StateReleaseToRefresh:
			if l.offset >= l.m.trigger {
				l.changeState(StateReleaseToRefresh)
			} else {
				l.changeState(StatePullToRefresh)
			}
		}
	}
	l.notifyOffset()
}

func (l *Layout) changeState(s State) {
	if s == l.state {
		return
	}
	old := l.state
	l.state = s
	l.debugState(old, s)
	l.callHeader(func(h Header) { h.OnStateChanged(l, s) })
	capitan.Emit(l.ctx, RefreshStateChanged,
		KeyOldState.Field(old.String()),
		KeyNewState.Field(s.String()),
		KeyOffset.Field(l.offset))
	l.emitEvent(EventStateChanged, old, false)
}

func (l *Layout) notifyOffset() {
	progress := l.Progress()
	l.callHeader(func(h Header) { h.OnOffsetChanged(l, l.offset, progress, l.state) })
}

// callHeader runs fn with re-entrant mutation blocked.
func (l *Layout) callHeader(fn func(Header)) {
	l.guarded(func() { fn(l.header) })
}

// guarded runs fn with re-entrant mutation blocked.
func (l *Layout) guarded(fn func()) {
	l.inNotify++
	defer func() { l.inNotify-- }()
	fn()
}
