package cpu

import (
	"codeberg.org/mutker/pemon/internal/errors"
)

// Utilization returns the share of non-idle time between two snapshots of
// the same core as a percentage in [0, 100].
func Utilization(previous, current Snapshot) (float64, error) {
	errFactory := errors.New()

	prevTotal, curTotal := previous.Total(), current.Total()
	if curTotal < prevTotal || current.Idle < previous.Idle {
		return 0, errFactory.WithData(ErrCounterRegression, struct {
			PreviousTotal uint64
			CurrentTotal  uint64
			PreviousIdle  uint64
			CurrentIdle   uint64
		}{
			PreviousTotal: prevTotal,
			CurrentTotal:  curTotal,
			PreviousIdle:  previous.Idle,
			CurrentIdle:   current.Idle,
		})
	}

	totalDelta := curTotal - prevTotal
	if totalDelta == 0 {
		return 0, errFactory.New(ErrZeroIntervalCounters)
	}

	idleDelta := current.Idle - previous.Idle
	if idleDelta > totalDelta {
		idleDelta = totalDelta
	}

	return 100 * float64(totalDelta-idleDelta) / float64(totalDelta), nil
}

// Tracker retains the last snapshot of every core and turns each new
// snapshot set into per-core utilization. It is not safe for concurrent use.
type Tracker struct {
	previous []Snapshot
}

// NewTracker seeds a tracker with the initial snapshot set.
func NewTracker(seed []Snapshot) *Tracker {
	previous := make([]Snapshot, len(seed))
	copy(previous, seed)

	return &Tracker{previous: previous}
}

// Cores returns the number of tracked cores.
func (t *Tracker) Cores() int {
	return len(t.previous)
}

// Advance computes utilization for every core against the retained
// snapshots, then replaces them with next. On error nothing is replaced.
func (t *Tracker) Advance(next []Snapshot) ([]float64, error) {
	errFactory := errors.New()

	if len(next) != len(t.previous) {
		return nil, errFactory.WithData(ErrCoreCountChanged, struct {
			Tracked int
			Got     int
		}{
			Tracked: len(t.previous),
			Got:     len(next),
		})
	}

	usage := make([]float64, len(next))
	for i := range next {
		u, err := Utilization(t.previous[i], next[i])
		if err != nil {
			return nil, errFactory.Wrap(errorCode(err), err).WithData(struct {
				Core int
			}{
				Core: i,
			})
		}
		usage[i] = u
	}

	replaced := make([]Snapshot, len(next))
	copy(replaced, next)
	t.previous = replaced

	return usage, nil
}

func errorCode(err error) errors.ErrorCode {
	if code, ok := errors.CodeOf(err); ok {
		return code
	}

	return errors.ErrInternal
}
