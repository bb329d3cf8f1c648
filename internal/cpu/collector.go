package cpu

import (
	"context"

	"codeberg.org/mutker/pemon/internal/errors"
	"codeberg.org/mutker/pemon/internal/logger"
	"codeberg.org/mutker/pemon/internal/telemetry"
)

// Collector produces per-core frequency and utilization samples from a
// Source. Init must be called once before Collect.
type Collector struct {
	source  Source
	logger  logger.Logger
	tracker *Tracker
}

func NewCollector(source Source, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Nop()
	}

	return &Collector{
		source: source,
		logger: log,
	}
}

// Init enumerates the cores and takes the seed snapshot for each of them.
// It returns the number of cores found.
func (c *Collector) Init(ctx context.Context) (int, error) {
	topo, err := c.readTopology(ctx)
	if err != nil {
		return 0, err
	}

	seed, err := c.readSnapshots(ctx, topo.Cores)
	if err != nil {
		return 0, err
	}

	c.tracker = NewTracker(seed)

	c.logger.Debug().
		Int("cores", topo.Cores).
		Msg("CPU counters seeded")

	return topo.Cores, nil
}

// Collect reads the current frequencies and counters and returns one
// sample per core in ascending ID order.
func (c *Collector) Collect(ctx context.Context) ([]telemetry.CoreSample, error) {
	errFactory := errors.New()

	if c.tracker == nil {
		return nil, errFactory.New(ErrNotInitialized)
	}

	topo, err := c.readTopology(ctx)
	if err != nil {
		return nil, err
	}

	if topo.Cores != c.tracker.Cores() {
		return nil, errFactory.WithData(ErrCoreCountChanged, struct {
			Tracked int
			Got     int
		}{
			Tracked: c.tracker.Cores(),
			Got:     topo.Cores,
		})
	}

	snapshots, err := c.readSnapshots(ctx, topo.Cores)
	if err != nil {
		return nil, err
	}

	usage, err := c.tracker.Advance(snapshots)
	if err != nil {
		return nil, err
	}

	samples := make([]telemetry.CoreSample, topo.Cores)
	for i, f := range topo.Frequencies {
		samples[i] = telemetry.CoreSample{
			ID:           f.ID,
			FrequencyMHz: f.MHz,
			Utilization:  usage[i],
		}
	}

	return samples, nil
}

func (c *Collector) readTopology(ctx context.Context) (Topology, error) {
	cpuinfo, err := c.source.ReadCPUInfo(ctx)
	if err != nil {
		return Topology{}, err
	}

	return Enumerate(cpuinfo)
}

func (c *Collector) readSnapshots(ctx context.Context, cores int) ([]Snapshot, error) {
	stat, err := c.source.ReadStat(ctx)
	if err != nil {
		return nil, err
	}

	return ParseSnapshots(stat, cores)
}
