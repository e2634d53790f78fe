package pullrefresh

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// ConfigUpdate is one decoded version of a watched config file. Err is set
// when the file could not be read, decoded, or validated.
type ConfigUpdate struct {
	Config Config
	Err    error
}

// WatchConfig watches the config file at path and sends a ConfigUpdate each
// time it is written. The current contents are sent first. The channel is
// closed when ctx is done or the watcher fails.
//
// Updates arrive on a background goroutine; the receiver applies them with
// Layout.ApplyConfig from its own update loop.
func WatchConfig(ctx context.Context, path string) (<-chan ConfigUpdate, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	codec := CodecFor(path)
	out := make(chan ConfigUpdate)

	send := func() bool {
		var u ConfigUpdate
		data, err := os.ReadFile(path)
		if err != nil {
			u.Err = fmt.Errorf("read %s: %w", path, err)
		} else {
			u.Config, u.Err = LoadConfig(data, codec)
		}
		select {
		case out <- u:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(out)
		defer watcher.Close()

		if !send() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if !send() {
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}
