package pullrefresh

import "time"

// --- Constants ---

const (
	// NoPointer marks a gesture session with no active pointer.
	NoPointer = -1

	defaultTouchSlop = 8 // dp
)

// --- Pointer events ---

// PointerEvent is one raw pointer event delivered to a Layout. Time is a
// monotonic timestamp used only for velocity estimation.
type PointerEvent struct {
	Action PointerAction
	ID     int
	X, Y   float64
	Time   time.Duration
}

// DragPhase identifies what a GestureTracker decided about an event.
type DragPhase uint8

const (
	DragNone    DragPhase = iota // nothing for the layout to do
	DragStart                    // the slop was crossed; Delta holds the movement beyond it
	DragMove                     // Delta holds the raw vertical movement since the last move
	DragRelease                  // the last pointer lifted; Velocity holds the release velocity
	DragCancel                   // the platform aborted the gesture
)

// Drag is the result of feeding a PointerEvent to a GestureTracker.
type Drag struct {
	Phase    DragPhase
	Delta    int
	Velocity float64
	// Dragged is set on DragRelease and DragCancel when the slop had been
	// crossed.
	Dragged bool
}

// --- Gesture tracker ---

type trackedPointer struct {
	id int
	y  float64
}

// GestureTracker turns raw pointer events into vertical drag deltas for a
// single active pointer. It applies a touch slop before a drag begins, hands
// the drag over between pointers, and estimates the release velocity.
type GestureTracker struct {
	// Slop is the distance in pixels a pointer must travel from its press
	// position before a drag begins.
	Slop int

	// CanScrollUp reports whether the content can still scroll toward its
	// top. A session only starts when it returns false. Nil means never.
	CanScrollUp func() bool

	// Accept, if set, is asked once the slop is crossed with the signed
	// movement since the press. Returning false leaves the session dormant
	// until the next PointerDown.
	Accept func(dy int) bool

	pointers []trackedPointer // pressed pointers in arrival order
	active   int
	startY   float64
	lastY    int
	dragging bool
	velocity VelocityTracker
}

// NewGestureTracker creates a tracker with the given slop in pixels.
func NewGestureTracker(slop int, canScrollUp func() bool) *GestureTracker {
	return &GestureTracker{
		Slop:        slop,
		CanScrollUp: canScrollUp,
		active:      NoPointer,
	}
}

// Active returns the id of the pointer driving the session, or NoPointer.
func (g *GestureTracker) Active() int { return g.active }

// Dragging reports whether the slop has been crossed in the current session.
func (g *GestureTracker) Dragging() bool { return g.dragging }

// Reset ends the current session and forgets all pressed pointers.
func (g *GestureTracker) Reset() {
	g.pointers = g.pointers[:0]
	g.active = NoPointer
	g.dragging = false
	g.velocity.Reset()
}

// Handle feeds one pointer event through the tracker.
func (g *GestureTracker) Handle(ev PointerEvent) Drag {
	switch ev.Action {
	case PointerDown:
		g.Reset()
		g.track(ev.ID, ev.Y)
		if g.CanScrollUp != nil && g.CanScrollUp() {
			return Drag{}
		}
		g.activate(ev)
		return Drag{}

	case PointerSecondaryDown:
		g.track(ev.ID, ev.Y)
		if g.active == NoPointer {
			return Drag{}
		}
		g.activate(ev)
		return Drag{}

	case PointerMove:
		g.updateY(ev.ID, ev.Y)
		if g.active == NoPointer || ev.ID != g.active {
			return Drag{}
		}
		g.velocity.Add(ev.Time, ev.Y)
		y := int(ev.Y)
		if !g.dragging {
			moved := int(ev.Y - g.startY)
			if abs(moved) <= g.Slop {
				return Drag{}
			}
			if g.Accept != nil && !g.Accept(moved) {
				g.active = NoPointer
				g.velocity.Reset()
				return Drag{}
			}
			g.dragging = true
			g.lastY = y
			beyond := moved - g.Slop
			if moved < 0 {
				beyond = moved + g.Slop
			}
			return Drag{Phase: DragStart, Delta: beyond}
		}
		dy := y - g.lastY
		g.lastY = y
		if dy == 0 {
			return Drag{}
		}
		return Drag{Phase: DragMove, Delta: dy}

	case PointerSecondaryUp:
		idx := g.indexOf(ev.ID)
		if idx < 0 {
			return Drag{}
		}
		if ev.ID == g.active && len(g.pointers) > 1 {
			next := 0
			if idx == 0 {
				next = 1
			}
			p := g.pointers[next]
			g.active = p.id
			g.startY = p.y
			g.lastY = int(p.y)
			g.velocity.Reset()
			g.velocity.Add(ev.Time, p.y)
		}
		g.untrack(idx)
		if len(g.pointers) == 0 {
			return g.release(ev)
		}
		return Drag{}

	case PointerUp:
		return g.release(ev)

	case PointerCancel:
		active, dragging := g.active != NoPointer, g.dragging
		g.Reset()
		if active {
			return Drag{Phase: DragCancel, Dragged: dragging}
		}
	}
	return Drag{}
}

func (g *GestureTracker) release(ev PointerEvent) Drag {
	if g.active == NoPointer {
		g.Reset()
		return Drag{}
	}
	if ev.ID == g.active {
		g.velocity.Add(ev.Time, ev.Y)
	}
	d := Drag{Phase: DragRelease, Dragged: g.dragging}
	if g.dragging {
		d.Velocity = g.velocity.Velocity()
	}
	g.Reset()
	return d
}

// activate makes the event's pointer the active one and re-baselines.
func (g *GestureTracker) activate(ev PointerEvent) {
	g.active = ev.ID
	g.startY = ev.Y
	g.lastY = int(ev.Y)
	g.velocity.Reset()
	g.velocity.Add(ev.Time, ev.Y)
}

func (g *GestureTracker) track(id int, y float64) {
	if i := g.indexOf(id); i >= 0 {
		g.pointers[i].y = y
		return
	}
	g.pointers = append(g.pointers, trackedPointer{id: id, y: y})
}

func (g *GestureTracker) updateY(id int, y float64) {
	if i := g.indexOf(id); i >= 0 {
		g.pointers[i].y = y
	}
}

func (g *GestureTracker) untrack(i int) {
	g.pointers = append(g.pointers[:i], g.pointers[i+1:]...)
}

func (g *GestureTracker) indexOf(id int) int {
	for i, p := range g.pointers {
		if p.id == id {
			return i
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
