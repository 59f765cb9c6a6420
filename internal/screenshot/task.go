// Package screenshot captures the display in the background after the
// dashboard is drawn. The capture is best effort: failures are reported on
// the Task and never affect the dashboard.
package screenshot

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rileyhilliard/dotfetch/internal/errors"
	"github.com/rileyhilliard/dotfetch/internal/logger"
)

const (
	startMessage = "Creating Screenshot: "
	tickMark     = "."
	doneMessage  = " done :3"
)

// Capturer grabs an image of the display.
type Capturer interface {
	Capture() (image.Image, error)
}

// Options controls the capture.
type Options struct {
	// Dir is where the PNG is written.
	Dir string

	// Countdown is the number of ticks before capturing, one dot each.
	Countdown int

	// Tick is the delay before each dot.
	Tick time.Duration

	// Now stamps the file name. Nil uses time.Now.
	Now func() time.Time

	// Log receives capture failures at debug level. Nil discards them.
	Log logger.Logger
}

// DefaultOptions captures into the working directory after three one-second ticks.
func DefaultOptions() Options {
	return Options{Dir: ".", Countdown: 3, Tick: time.Second}
}

// FileName returns the screenshot file name for t.
func FileName(t time.Time) string {
	return "Screenshot" + t.Format("2006-01-02_150405") + ".png"
}

// Task is a running or finished capture.
type Task struct {
	done chan struct{}

	mu   sync.Mutex
	err  error
	path string
}

// Start runs a capture in its own goroutine and returns immediately. Progress
// is written to w. Cancelling ctx aborts the countdown.
func Start(ctx context.Context, opts Options, capturer Capturer, w io.Writer) *Task {
	if w == nil {
		w = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logger.Noop()
	}

	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)

		path, err := run(ctx, opts, capturer, w)
		if err != nil {
			opts.Log.Debug("screenshot failed: %v", err)
		}

		t.mu.Lock()
		t.path, t.err = path, err
		t.mu.Unlock()
	}()
	return t
}

// Done is closed when the task finishes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the capture error. It is nil while the task is running.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Path returns the written file, or "" if nothing was written yet.
func (t *Task) Path() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path
}

// Wait blocks until the task finishes or timeout elapses and returns the
// task error. A non-positive timeout waits indefinitely.
func (t *Task) Wait(timeout time.Duration) error {
	if timeout <= 0 {
		<-t.done
		return t.Err()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-t.done:
		return t.Err()
	case <-timer.C:
		return errors.New(errors.ErrScreenshot,
			fmt.Sprintf("Screenshot still running after %s", timeout),
			"The capture continues in the background and is abandoned on exit.")
	}
}

func run(ctx context.Context, opts Options, capturer Capturer, w io.Writer) (string, error) {
	if capturer == nil {
		return "", errors.New(errors.ErrScreenshot, "No screen capturer available", "")
	}

	_, _ = io.WriteString(w, startMessage)
	for i := 0; i < opts.Countdown; i++ {
		if err := sleep(ctx, opts.Tick); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrScreenshot, "Screenshot cancelled", "")
		}
		_, _ = io.WriteString(w, tickMark)
	}

	img, err := capturer.Capture()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrScreenshot,
			"Couldn't capture the display",
			"Screen capture needs a graphical session.")
	}

	path := filepath.Join(opts.Dir, FileName(opts.Now()))
	if err := writePNG(path, img); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrScreenshot,
			fmt.Sprintf("Couldn't save %s", path),
			"Check that the screenshot directory exists and is writable.")
	}

	_, _ = io.WriteString(w, doneMessage)
	return path, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
