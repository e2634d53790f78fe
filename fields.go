package pullrefresh

import "github.com/zoobzio/capitan"

// Field keys for refresh events.
var (
	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyOffset is the header offset in pixels when the event fired.
	KeyOffset = capitan.NewIntKey("offset")

	// KeyOutcome is "success" or "failure" for a completed refresh.
	KeyOutcome = capitan.NewStringKey("outcome")

	// KeyDwell is how long the outcome stays visible before the reset.
	KeyDwell = capitan.NewDurationKey("dwell")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")
)
