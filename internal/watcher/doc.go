// Package watcher re-runs a callback whenever a data file changes.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temp file and renaming it over the original still
// trigger a change. Bursts of events are debounced into a single callback.
//
// Example usage:
//
//	w, err := watcher.New("enrollment.csv", func(path string) error {
//		return render(path)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer w.Close()
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := w.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package watcher
