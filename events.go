package pullrefresh

// RefreshEvent carries a refresh lifecycle event to an EventSink.
type RefreshEvent struct {
	Type     EventType
	State    State
	OldState State   // EventStateChanged only
	Offset   int     // header offset in pixels
	Progress float64 // offset / max drag distance
	Success  bool    // EventComplete only
}

// EventSink receives refresh lifecycle events. The ecs submodule provides a
// sink that publishes them into a donburi world. Like header callbacks, a
// sink cannot mutate the layout: such calls are ignored.
type EventSink interface {
	EmitEvent(event RefreshEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(event RefreshEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event RefreshEvent) { f(event) }

// SetEventSink sets the sink that receives lifecycle events. Nil disables.
func (l *Layout) SetEventSink(sink EventSink) {
	l.sink = sink
}

func (l *Layout) emitEvent(typ EventType, old State, success bool) {
	if l.sink == nil {
		return
	}
	e := RefreshEvent{
		Type:     typ,
		State:    l.state,
		OldState: old,
		Offset:   l.offset,
		Progress: l.Progress(),
		Success:  success,
	}
	l.guarded(func() { l.sink.EmitEvent(e) })
}
