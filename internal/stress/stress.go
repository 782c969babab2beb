package stress

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/P1x3lc0w/P1x3lc0w.Common/set"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrInconsistent = errors.New("set state is inconsistent")

type Report struct {
	Config        Config        `yaml:"config"`
	Added         int64         `yaml:"added"`
	Removed       int64         `yaml:"removed"`
	FinalCount    int           `yaml:"finalCount"`
	Snapshots     int64         `yaml:"snapshots"`
	TornSnapshots int64         `yaml:"tornSnapshots"`
	Elapsed       time.Duration `yaml:"elapsed"`
	Consistent    bool          `yaml:"consistent"`
}

type counters struct {
	added     atomic.Int64
	removed   atomic.Int64
	snapshots atomic.Int64
	torn      atomic.Int64
}

// Run executes the workload described by cfg. A report is returned whenever
// the workload ran to completion, together with ErrInconsistent if the checks failed.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := set.NewConcurrentSet[int](set.WithCapacity(cfg.KeySpace))
	defer s.Close()

	var c counters
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Writers; w++ {
		rnd := rand.New(rand.NewPCG(cfg.Seed, uint64(w)))
		g.Go(func() error {
			return write(gctx, s, cfg, rnd, &c)
		})
	}

	snapshotsPerReader := max(1, cfg.Ops/10)
	for r := 0; r < cfg.Readers; r++ {
		g.Go(func() error {
			return read(gctx, s, cfg.KeySpace, snapshotsPerReader, &c)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "stress workload failed")
	}

	finalCount, err := s.Len()
	if err != nil {
		return nil, errors.Wrap(err, "could not count final state")
	}

	report := &Report{
		Config:        cfg,
		Added:         c.added.Load(),
		Removed:       c.removed.Load(),
		FinalCount:    finalCount,
		Snapshots:     c.snapshots.Load(),
		TornSnapshots: c.torn.Load(),
		Elapsed:       time.Since(start),
	}

	report.Consistent = int64(report.FinalCount) == report.Added-report.Removed &&
		report.TornSnapshots == 0
	if !report.Consistent {
		return report, errors.Wrapf(
			ErrInconsistent,
			"final count %d, added %d, removed %d, torn snapshots %d",
			report.FinalCount, report.Added, report.Removed, report.TornSnapshots,
		)
	}

	return report, nil
}

func write(ctx context.Context, s *set.ConcurrentSet[int], cfg Config, rnd *rand.Rand, c *counters) error {
	for i := 0; i < cfg.Ops; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		key := rnd.IntN(cfg.KeySpace)
		if rnd.IntN(2) == 0 {
			added, err := s.Add(key)
			if err != nil {
				return err
			}
			if added {
				c.added.Add(1)
			}
			continue
		}

		removed, err := s.Remove(key)
		if err != nil {
			return err
		}
		if removed {
			c.removed.Add(1)
		}
	}

	return nil
}

func read(ctx context.Context, s *set.ConcurrentSet[int], keySpace, n int, c *counters) error {
	seen := make(map[int]struct{}, keySpace)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap, err := s.Snapshot()
		if err != nil {
			return err
		}

		c.snapshots.Add(1)
		if torn(snap, keySpace, seen) {
			c.torn.Add(1)
		}
		clear(seen)
	}

	return nil
}

// torn reports a snapshot holding duplicates, foreign keys or too many items
func torn(snap *set.Snapshot[int], keySpace int, seen map[int]struct{}) bool {
	if snap.Len() > keySpace {
		return true
	}

	for key := range snap.All() {
		if key < 0 || key >= keySpace {
			return true
		}
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
	}

	return false
}
