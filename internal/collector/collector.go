// Package collector builds a HostSnapshot from the host's information
// facilities. A facility that cannot be reached costs only its own category:
// the snapshot keeps placeholders there and the failure is reported in a
// CollectionError.
package collector

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rileyhilliard/dotfetch/internal/errors"
	"github.com/rileyhilliard/dotfetch/internal/logger"
	"github.com/rileyhilliard/dotfetch/internal/snapshot"
)

// DefaultTimeout bounds each facility call.
const DefaultTimeout = 5 * time.Second

// errNoFacility marks categories that have no facility on this platform.
var errNoFacility = stderrors.New("no facility available on this platform")

// Collector gathers one HostSnapshot from a set of facilities.
type Collector struct {
	sources Sources
	timeout time.Duration
	now     func() time.Time
	log     logger.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithTimeout sets the per-category timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for category failures.
func WithLogger(l logger.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock overrides the clock used for CollectedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Collector over sources.
func New(sources Sources, opts ...Option) *Collector {
	c := &Collector{
		sources: sources,
		timeout: DefaultTimeout,
		now:     time.Now,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect queries every facility once, concurrently, each under its own
// timeout derived from ctx.
//
// The returned error is a *errors.CollectionError when some categories
// failed; the snapshot is still complete, with placeholders for those
// categories. When every category fails, Collect returns a nil snapshot and
// an ErrCollect error.
func (c *Collector) Collect(ctx context.Context) (*snapshot.HostSnapshot, error) {
	snap := &snapshot.HostSnapshot{CollectedAt: c.now()}

	var (
		mu     sync.Mutex
		g      errgroup.Group
		failed = make(map[string]error)
	)

	// fetch returns an apply func that copies its result into snap. apply only
	// runs when fetch answered before the deadline, so an abandoned facility
	// can never write to the snapshot.
	run := func(category string, available bool, fetch func(ctx context.Context) (func(), error)) {
		if !available {
			mu.Lock()
			failed[category] = errNoFacility
			mu.Unlock()
			return
		}
		// A failed category never aborts the others, so every Go func returns nil.
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			type result struct {
				apply func()
				err   error
			}
			done := make(chan result, 1)
			go func() {
				apply, err := fetch(cctx)
				done <- result{apply, err}
			}()

			var err error
			select {
			case r := <-done:
				err = r.err
				if err == nil {
					mu.Lock()
					r.apply()
					mu.Unlock()
				}
			case <-cctx.Done():
				err = cctx.Err()
			}
			if err != nil {
				mu.Lock()
				failed[category] = err
				mu.Unlock()
			}
			return nil
		})
	}

	s := c.sources

	run(CategoryIdentity, s.Identity != nil, func(ctx context.Context) (func(), error) {
		id, err := s.Identity.Identity(ctx)
		return func() { snap.User, snap.Host = id.User, id.Host }, err
	})

	run(CategoryOS, s.OS != nil, func(ctx context.Context) (func(), error) {
		info, err := s.OS.OS(ctx)
		return func() {
			snap.OS = snapshot.OSInfo{
				Caption:      info.Caption,
				Architecture: info.Architecture,
				Build:        info.Build,
			}
		}, err
	})

	run(CategoryUptime, s.Uptime != nil, func(ctx context.Context) (func(), error) {
		up, err := s.Uptime.Uptime(ctx)
		return func() { snap.Uptime = up }, err
	})

	run(CategoryDisplay, s.Display != nil, func(ctx context.Context) (func(), error) {
		d, err := s.Display.Display(ctx)
		return func() { snap.Display = snapshot.DisplayInfo(d) }, err
	})

	run(CategoryGPU, s.Display != nil, func(ctx context.Context) (func(), error) {
		gpus, err := s.Display.Adapters(ctx)
		return func() { snap.GPUs = gpus }, err
	})

	run(CategoryDesktop, s.Desktop != nil, func(ctx context.Context) (func(), error) {
		d, err := s.Desktop.Desktop(ctx)
		return func() { snap.Font, snap.Shell = d.Font, d.Shell }, err
	})

	run(CategoryCPU, s.Processor != nil, func(ctx context.Context) (func(), error) {
		p, err := s.Processor.Processor(ctx)
		return func() { snap.CPU = snapshot.CPUInfo(p) }, err
	})

	run(CategoryMemory, s.Memory != nil, func(ctx context.Context) (func(), error) {
		m, err := s.Memory.Memory(ctx)
		return func() { snap.Memory = memoryMB(m) }, err
	})

	run(CategoryChassis, s.Chassis != nil, func(ctx context.Context) (func(), error) {
		ch, err := s.Chassis.Chassis(ctx)
		return func() { snap.Chassis = snapshot.ChassisInfo(ch) }, err
	})

	run(CategoryBattery, s.Battery != nil, func(ctx context.Context) (func(), error) {
		b, err := s.Battery.Battery(ctx)
		return func() {
			snap.Battery = snapshot.BatteryInfo{
				Available:     b.Present,
				ChargePercent: b.Percent,
				Charging:      b.Charging,
			}
		}, err
	})

	run(CategoryStorage, s.Volumes != nil, func(ctx context.Context) (func(), error) {
		vols, err := s.Volumes.Volumes(ctx)
		return func() {
			disks := make([]snapshot.Disk, 0, len(vols))
			for _, v := range vols {
				disks = append(disks, snapshot.Disk(v))
			}
			snap.Disks = disks
		}, err
	})

	_ = g.Wait()

	collErr := &errors.CollectionError{}
	for _, category := range Categories {
		if err, ok := failed[category]; ok {
			c.log.Debug("%s unreachable: %v", category, err)
			collErr.Add(category, err)
		}
	}

	if len(collErr.Failures) == len(Categories) {
		return nil, errors.WrapWithCode(collErr, errors.ErrCollect,
			"Couldn't read any system facts",
			"Set DOTFETCH_DEBUG=1 to see why each facility failed.")
	}

	normalize(snap)

	if collErr.Empty() {
		return snap, nil
	}
	return snap, collErr
}

// memoryMB converts byte counts to megabytes (2^20 bytes). Used memory is
// total minus available and never exceeds total.
func memoryMB(m MemoryInfo) snapshot.MemoryInfo {
	var used uint64
	if m.AvailableBytes < m.TotalBytes {
		used = m.TotalBytes - m.AvailableBytes
	}
	return snapshot.MemoryInfo{
		TotalMB: int64(m.TotalBytes >> 20),
		UsedMB:  int64(used >> 20),
	}
}
