package sampler

import (
	"context"

	"codeberg.org/mutker/pemon/internal/telemetry"
)

// CoreCollector produces per-core samples. Init is called once before the
// first Collect.
type CoreCollector interface {
	Init(ctx context.Context) (int, error)
	Collect(ctx context.Context) ([]telemetry.CoreSample, error)
}

// SensorReader returns the current temperature and fan readings.
type SensorReader interface {
	Read(ctx context.Context) (telemetry.SensorReading, error)
}

// StorageReader returns the current storage temperature in degrees Celsius.
type StorageReader interface {
	Read(ctx context.Context) (int, error)
}

// State is the lifecycle stage of a Sampler.
type State int

const (
	Initializing State = iota
	Running
	Draining
	Terminated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
