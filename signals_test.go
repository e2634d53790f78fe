package pullrefresh

import "testing"

func TestRefreshStateChanged(t *testing.T) {
	if RefreshStateChanged.Name() != "pullrefresh.state.changed" {
		t.Errorf("expected name 'pullrefresh.state.changed', got %q", RefreshStateChanged.Name())
	}
}

func TestRefreshReady(t *testing.T) {
	if RefreshReady.Name() != "pullrefresh.ready" {
		t.Errorf("expected name 'pullrefresh.ready', got %q", RefreshReady.Name())
	}
}

func TestRefreshTriggered(t *testing.T) {
	if RefreshTriggered.Name() != "pullrefresh.refresh.triggered" {
		t.Errorf("expected name 'pullrefresh.refresh.triggered', got %q", RefreshTriggered.Name())
	}
}

func TestRefreshCompleted(t *testing.T) {
	if RefreshCompleted.Name() != "pullrefresh.refresh.completed" {
		t.Errorf("expected name 'pullrefresh.refresh.completed', got %q", RefreshCompleted.Name())
	}
}

func TestRefreshReset(t *testing.T) {
	if RefreshReset.Name() != "pullrefresh.reset" {
		t.Errorf("expected name 'pullrefresh.reset', got %q", RefreshReset.Name())
	}
}

func TestConfigApplied(t *testing.T) {
	if ConfigApplied.Name() != "pullrefresh.config.applied" {
		t.Errorf("expected name 'pullrefresh.config.applied', got %q", ConfigApplied.Name())
	}
}

func TestConfigRejected(t *testing.T) {
	if ConfigRejected.Name() != "pullrefresh.config.rejected" {
		t.Errorf("expected name 'pullrefresh.config.rejected', got %q", ConfigRejected.Name())
	}
}
