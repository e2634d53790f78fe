package pullrefresh

import "github.com/zoobzio/capitan"

// Refresh lifecycle signals. Hooks may run off the update goroutine and must
// not call back into a Layout.
var (
	// RefreshStateChanged is emitted when a Layout transitions between states.
	RefreshStateChanged = capitan.NewSignal(
		"pullrefresh.state.changed",
		"Refresh state transition",
	)

	// RefreshReady is emitted when the header first leaves its rest position.
	RefreshReady = capitan.NewSignal(
		"pullrefresh.ready",
		"Header left its rest position",
	)

	// RefreshTriggered is emitted when a gesture-committed refresh settles
	// and the host is notified.
	RefreshTriggered = capitan.NewSignal(
		"pullrefresh.refresh.triggered",
		"Gesture committed a refresh",
	)

	// RefreshCompleted is emitted when the host reports the refresh outcome.
	RefreshCompleted = capitan.NewSignal(
		"pullrefresh.refresh.completed",
		"Refresh completed",
	)

	// RefreshReset is emitted when the header settles back to idle.
	RefreshReset = capitan.NewSignal(
		"pullrefresh.reset",
		"Header reset to idle",
	)
)

// Configuration signals.
var (
	// ConfigApplied is emitted when a Layout accepts a new Config.
	ConfigApplied = capitan.NewSignal(
		"pullrefresh.config.applied",
		"Config applied successfully",
	)

	// ConfigRejected is emitted when a Config fails validation.
	ConfigRejected = capitan.NewSignal(
		"pullrefresh.config.rejected",
		"Config failed validation",
	)
)
