// Package pullrefresh implements a pull-to-refresh gesture controller for
// [Ebitengine] hosts.
//
// A [Layout] owns a header and one content child. Dragging down while the
// content sits at its top pulls the header into view with growing
// resistance; releasing past the trigger distance commits a refresh, the
// header settles at its refreshing height, and the host's onRefresh
// callback runs. The host ends the refresh with [Layout.SetRefreshComplete];
// the header shows the outcome briefly and then returns to rest.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	layout, err := pullrefresh.New(pullrefresh.DefaultConfig(), header, list)
//	if err != nil {
//		log.Fatal(err)
//	}
//	layout.SetOnRefresh(startReload)
//	pullrefresh.Run(layout, pullrefresh.RunConfig{
//		Title: "Inbox", Width: 480, Height: 800,
//	})
//
// For full control, feed input yourself: call [Layout.HandlePointer] for
// each raw pointer event and [Layout.Update] once per frame, then place the
// header and content with [Layout.HeaderRect] and [Layout.ContentRect].
//
// # Input
//
// Pointer events carry an action ([PointerDown], [PointerMove],
// [PointerSecondaryDown], [PointerSecondaryUp], [PointerUp],
// [PointerCancel]), a pointer id, a position, and a timestamp. A
// [GestureTracker] follows one active pointer, applies the touch slop, hands
// the drag over when fingers change, and estimates the release velocity.
// [InputSource] produces these events from Ebitengine mouse and touch input.
//
// # Nested scrolling
//
// A Layout implements [NestedScrollParent]. Scrollable content reports its
// scroll deltas through a [ScrollChild]; the layout takes the header back
// up before the content scrolls and pulls it down with any overscroll past
// the top. Layouts can be nested with [Layout.SetNestedParent].
//
// # States
//
// A refresh cycle runs Idle → PullToRefresh → ReleaseToRefresh → Released
// → Refreshing → Success or Failure → Idle. The [Header] is told about every
// offset change and state transition. Header callbacks must not drive the
// layout: mutating calls made from inside them are ignored.
//
// # Observability
//
// Lifecycle transitions are emitted as capitan signals ([RefreshStateChanged],
// [RefreshTriggered], [RefreshCompleted], ...) and, when an [EventSink] is
// set, as [RefreshEvent] values. The ecs subpackage publishes them into a
// Donburi world. [Layout.SetDebugMode] logs transitions to stderr.
//
// # Configuration
//
// [Config] holds the tunables: drag rate, max drag and trigger distances,
// refreshing height, outcome dwell durations, header offset, content
// pinning, touch slop, and display density. Load it from YAML or JSON with
// [LoadConfig] and keep it live with [WatchConfig] and [Layout.ApplyConfig].
//
// # Automated testing
//
// [InputSource] accepts injected gestures (InjectPress, InjectMove,
// InjectRelease, InjectDrag, InjectCancel, InjectWheel) and a [TestRunner]
// plays JSON scripts of gestures, refresh calls, and screenshots against a
// running [Game].
//
// [Ebitengine]: https://ebitengine.org
package pullrefresh
