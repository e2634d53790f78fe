package pullrefresh

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zoobzio/clockz"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerSlot struct {
	down bool
	x, y float64
}

// InputSource polls Ebitengine mouse, touch, and wheel input once per frame
// and turns it into PointerEvents. The first pressed pointer produces
// PointerDown and later ones PointerSecondaryDown; the last release produces
// PointerUp. Losing window focus mid-gesture produces PointerCancel.
type InputSource struct {
	clock clockz.Clock
	start time.Time

	pointers  [maxPointers]pointerSlot
	downCount int

	prevTouchIDs []ebiten.TouchID
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool

	injectQueue []syntheticPointerEvent
	wheelQueue  []float64

	events []PointerEvent
}

// NewInputSource creates an input source that stamps events with clock.
func NewInputSource(clock clockz.Clock) *InputSource {
	return &InputSource{clock: clock, start: clock.Now()}
}

// Poll reads this frame's input and returns the resulting events. A frame
// that consumes an injected event skips real input. The slice is reused by
// the next call.
func (s *InputSource) Poll() []PointerEvent {
	s.events = s.events[:0]
	if s.processInjectedInput() {
		return s.events
	}
	s.processMousePointer()
	s.processTouchPointers()
	if s.downCount > 0 && !ebiten.IsFocused() {
		s.cancel()
	}
	return s.events
}

// Wheel returns this frame's vertical wheel delta. Injected wheel deltas
// take precedence over the real wheel.
func (s *InputSource) Wheel() float64 {
	if len(s.wheelQueue) > 0 {
		dy := s.wheelQueue[0]
		s.wheelQueue = s.wheelQueue[1:]
		return dy
	}
	_, dy := ebiten.Wheel()
	return dy
}

// Pending reports whether injected events are still queued.
func (s *InputSource) Pending() bool {
	return len(s.injectQueue) > 0 || len(s.wheelQueue) > 0
}

// --- Input processing ---

// processMousePointer handles the left mouse button (pointer 0).
func (s *InputSource) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *InputSource) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			p := &s.pointers[i]
			if p.down {
				s.processPointer(i, p.x, p.y, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *InputSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release machine for a single pointer.
func (s *InputSource) processPointer(id int, x, y float64, pressed bool) {
	p := &s.pointers[id]
	switch {
	case pressed && !p.down:
		p.down = true
		s.downCount++
		action := PointerDown
		if s.downCount > 1 {
			action = PointerSecondaryDown
		}
		s.emit(action, id, x, y)
	case !pressed && p.down:
		p.down = false
		s.downCount--
		action := PointerUp
		if s.downCount > 0 {
			action = PointerSecondaryUp
		}
		s.emit(action, id, x, y)
	case pressed && p.down && (x != p.x || y != p.y):
		s.emit(PointerMove, id, x, y)
	}
	p.x, p.y = x, y
}

// cancel aborts every pressed pointer with a single PointerCancel.
func (s *InputSource) cancel() {
	id := 0
	for i := range s.pointers {
		if s.pointers[i].down {
			id = i
			s.pointers[i].down = false
		}
	}
	s.downCount = 0
	s.emit(PointerCancel, id, s.pointers[id].x, s.pointers[id].y)
}

func (s *InputSource) emit(action PointerAction, id int, x, y float64) {
	s.events = append(s.events, PointerEvent{
		Action: action,
		ID:     id,
		X:      x,
		Y:      y,
		Time:   s.clock.Since(s.start),
	})
}
