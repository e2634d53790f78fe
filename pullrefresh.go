package pullrefresh

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// State is the refresh state of a Layout. A cycle runs
// Idle → PullToRefresh → ReleaseToRefresh → Released → Refreshing →
// Success|Failure → Idle; Released and Refreshing are entered at most once
// per cycle.
type State uint8

const (
	StateIdle             State = iota // at rest, offset 0
	StatePullToRefresh                 // dragging, offset below the trigger distance
	StateReleaseToRefresh              // dragging, releasing now would refresh
	StateReleased                      // committed, settling toward the refreshing height
	StateRefreshing                    // settled, waiting for SetRefreshComplete
	StateSuccess                       // refresh finished, showing the success dwell
	StateFailure                       // refresh finished, showing the failure dwell
)

// String returns the snake_case name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePullToRefresh:
		return "pull_to_refresh"
	case StateReleaseToRefresh:
		return "release_to_refresh"
	case StateReleased:
		return "released"
	case StateRefreshing:
		return "refreshing"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// PointerAction identifies a kind of raw pointer event.
type PointerAction uint8

const (
	PointerDown          PointerAction = iota // first pointer pressed
	PointerMove                               // a pressed pointer moved
	PointerSecondaryDown                      // an additional pointer pressed
	PointerSecondaryUp                        // a non-last pointer released
	PointerUp                                 // the last pointer released
	PointerCancel                             // the gesture was aborted by the platform
)

// String returns the name of the action.
func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerSecondaryDown:
		return "secondary_down"
	case PointerSecondaryUp:
		return "secondary_up"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of refresh lifecycle event.
type EventType uint8

const (
	EventReady        EventType = iota // first positive displacement from rest
	EventReset                         // settled back to idle
	EventStateChanged                  // the refresh state changed
	EventRefresh                       // a gesture committed a refresh (host onRefresh)
	EventComplete                      // SetRefreshComplete ended a refresh
)

// String returns the name of the event type.
func (t EventType) String() string {
	switch t {
	case EventReady:
		return "ready"
	case EventReset:
		return "reset"
	case EventStateChanged:
		return "state_changed"
	case EventRefresh:
		return "refresh"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}
