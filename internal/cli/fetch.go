package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rileyhilliard/dotfetch/internal/collector"
	"github.com/rileyhilliard/dotfetch/internal/config"
	"github.com/rileyhilliard/dotfetch/internal/errors"
	"github.com/rileyhilliard/dotfetch/internal/logger"
	"github.com/rileyhilliard/dotfetch/internal/render"
	"github.com/rileyhilliard/dotfetch/internal/screenshot"
	"github.com/rileyhilliard/dotfetch/internal/snapshot"
	"github.com/rileyhilliard/dotfetch/internal/ui"
)

// fetchEnv is everything the dashboard flow touches outside the process.
type fetchEnv struct {
	sources  collector.Sources
	capturer screenshot.Capturer
	out      io.Writer
	in       *os.File // nil disables the key wait
	getenv   func(string) string
	log      logger.Logger
}

func defaultFetchEnv(cfg *config.Config, out io.Writer) fetchEnv {
	return fetchEnv{
		sources:  defaultSources(cfg),
		capturer: screenshot.PrimaryDisplay{},
		out:      out,
		in:       os.Stdin,
		getenv:   os.Getenv,
		log:      logger.Default(),
	}
}

func defaultSources(cfg *config.Config) collector.Sources {
	return collector.DefaultSources(collector.SourceOptions{CPUSample: cfg.Collect.CPUSample})
}

// runFetch collects, draws, screenshots and waits, in that order.
func runFetch(ctx context.Context, cfg *config.Config, env fetchEnv) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if env.log == nil {
		env.log = logger.Noop()
	}
	if env.getenv == nil {
		env.getenv = os.Getenv
	}

	snap, err := collectSnapshot(ctx, cfg, env.sources, env.log)
	if err != nil {
		return err
	}

	disable, force := colorPlan(cfg.Color, env.getenv)
	if disable {
		ui.DisableColors()
	}

	tc := render.NewTermContext(env.out)
	if force {
		tc.ForceColor()
	}
	res := render.New(tc, render.Options{
		StartRow:    cfg.Layout.StartRow,
		Gap:         cfg.Layout.Gap,
		ClearScreen: cfg.Layout.ClearScreen,
	}).Render(snap)
	if err := tc.Err(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Couldn't draw the dashboard",
			"Check that stdout is writable")
	}
	env.log.Debug("dashboard drawn, cursor at row %d", res.CursorRow)

	waitKey := cfg.WaitForKey && isTerminal(env.in)

	// With nobody waiting, a detached capture would die with the process.
	var task *screenshot.Task
	if cfg.Screenshot.Enabled && (waitKey || cfg.Screenshot.Wait > 0) {
		task = screenshot.Start(ctx, screenshot.Options{
			Dir:       cfg.Screenshot.Dir,
			Countdown: cfg.Screenshot.Countdown,
			Tick:      cfg.Screenshot.Tick,
			Log:       env.log,
		}, env.capturer, env.out)
	}

	if waitKey {
		if err := waitForKey(env.in); err != nil {
			env.log.Debug("key wait: %v", err)
		}
	}

	if task != nil && cfg.Screenshot.Wait > 0 {
		if err := task.Wait(cfg.Screenshot.Wait); err != nil {
			env.log.Debug("screenshot: %v", err)
		} else {
			env.log.Debug("screenshot saved to %s", task.Path())
		}
	}

	fmt.Fprintln(env.out)
	return nil
}

// collectSnapshot returns a snapshot whenever at least one category was
// read. Partial failures are logged, not returned.
func collectSnapshot(ctx context.Context, cfg *config.Config, sources collector.Sources, log logger.Logger) (*snapshot.HostSnapshot, error) {
	c := collector.New(sources,
		collector.WithTimeout(cfg.Collect.Timeout),
		collector.WithLogger(log),
	)

	snap, err := c.Collect(ctx)
	if snap == nil {
		if err == nil {
			err = errors.New(errors.ErrCollect, "Collection returned nothing", "")
		}
		return nil, err
	}
	if err != nil {
		log.Debug("partial snapshot: %v", err)
	}
	return snap, nil
}

// colorPlan maps the color setting to (disable, force). NO_COLOR only
// applies in auto mode.
func colorPlan(mode string, getenv func(string) string) (disable, force bool) {
	switch mode {
	case "never":
		return true, false
	case "always":
		return false, true
	default:
		return getenv("NO_COLOR") != "", false
	}
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// waitForKey reads one byte from f in raw mode so any key, not just Enter,
// ends the wait.
func waitForKey(f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't switch the terminal to raw mode", "")
	}
	defer func() { _ = term.Restore(fd, state) }()

	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil && err != io.EOF {
		return err
	}
	return nil
}
