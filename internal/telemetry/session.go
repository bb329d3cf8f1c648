package telemetry

import (
	"codeberg.org/mutker/pemon/internal/errors"
)

// SessionLog is the ordered, append-only sequence of samples collected
// during one run. It is owned by a single producer and must not be
// shared across goroutines while it is being appended to.
type SessionLog struct {
	samples []Sample
}

// Append stores a copy of sample. Every sample in a session must carry
// the same, non-zero number of cores.
func (l *SessionLog) Append(sample Sample) error {
	errFactory := errors.New()

	if len(sample.Cores) == 0 {
		return errFactory.WithData(ErrInvalidSample, "sample has no cores")
	}

	if len(l.samples) > 0 {
		if want := len(l.samples[0].Cores); want != len(sample.Cores) {
			return errFactory.WithData(ErrCoreCountChanged, struct {
				Want int
				Got  int
			}{
				Want: want,
				Got:  len(sample.Cores),
			})
		}
	}

	cores := make([]CoreSample, len(sample.Cores))
	copy(cores, sample.Cores)
	sample.Cores = cores

	l.samples = append(l.samples, sample)

	return nil
}

// Len returns the number of samples collected.
func (l SessionLog) Len() int {
	return len(l.samples)
}

// Samples returns a copy of the collected samples in order.
func (l SessionLog) Samples() []Sample {
	out := make([]Sample, len(l.samples))
	copy(out, l.samples)

	for i := range out {
		cores := make([]CoreSample, len(out[i].Cores))
		copy(cores, out[i].Cores)
		out[i].Cores = cores
	}

	return out
}

// Each calls fn for every sample in order without copying.
func (l SessionLog) Each(fn func(Sample)) {
	for _, s := range l.samples {
		fn(s)
	}
}

// CoreCount returns the number of cores per sample, or 0 for an empty log.
func (l SessionLog) CoreCount() int {
	if len(l.samples) == 0 {
		return 0
	}

	return len(l.samples[0].Cores)
}
