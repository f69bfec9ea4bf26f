package synth

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// WatchPresets reloads path whenever it is written and delivers the result
// on presets. Parse failures go to errs and the previous presets stay in
// effect. Close done to stop watching.
func WatchPresets(path string, presets chan<- *PresetFile, errs chan<- error, done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("can't create watcher: %w", err)
	}
	go func() {
	loop:
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					break loop
				}
				// editors commonly rename over the file instead of writing it
				if event.Op&(fsnotify.Write|fsnotify.Rename) > 0 {
					f, err := ReadPresets(path)
					if err != nil {
						errs <- err
						continue loop
					}
					presets <- f
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					break loop
				}
				errs <- err
			case <-done:
				break loop
			}
		}
		// ignore close error
		watcher.Close()
	}()
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	return nil
}
