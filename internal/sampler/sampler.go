package sampler

import (
	"context"
	"time"

	"codeberg.org/mutker/pemon/internal/errors"
	"codeberg.org/mutker/pemon/internal/logger"
	"codeberg.org/mutker/pemon/internal/telemetry"
)

type Config struct {
	Interval time.Duration
}

// Sampler drives periodic collection and accumulates one session of samples.
// Run must only be called once.
type Sampler struct {
	cfg     Config
	cores   CoreCollector
	sensors SensorReader
	storage StorageReader
	logger  logger.Logger
	now     func() time.Time

	state State
}

func New(cfg Config, cores CoreCollector, sensors SensorReader, storage StorageReader, log logger.Logger) (*Sampler, error) {
	errFactory := errors.New()

	if cfg.Interval <= 0 {
		return nil, errFactory.WithData(ErrInvalidInterval, cfg.Interval.String())
	}

	if cores == nil || sensors == nil || storage == nil {
		return nil, errFactory.WithData(ErrInvalidArgument, "sampler collaborators must not be nil")
	}

	if log == nil {
		log = logger.Nop()
	}

	return &Sampler{
		cfg:     cfg,
		cores:   cores,
		sensors: sensors,
		storage: storage,
		logger:  log,
		now:     time.Now,
		state:   Initializing,
	}, nil
}

// State returns the current lifecycle stage.
func (s *Sampler) State() State {
	return s.state
}

// Run seeds the core counters, waits one interval and then collects a
// sample every interval until ctx is cancelled or a step fails.
// Cancellation is only observed between ticks. The samples collected so
// far are returned even when err is non-nil.
func (s *Sampler) Run(ctx context.Context) (telemetry.SessionLog, error) {
	errFactory := errors.New()
	var session telemetry.SessionLog

	defer s.transition(Terminated)

	cores, err := s.cores.Init(ctx)
	if err != nil {
		s.transition(Draining)
		return session, errFactory.Wrap(ErrSetupFailed, err)
	}

	s.logger.Info().
		Int("cores", cores).
		Dur("interval", s.cfg.Interval).
		Msg("Sampler initialized")

	// The first interval has no previous counters to compare against
	s.sleep(ctx)
	s.transition(Running)

	for {
		if ctx.Err() != nil {
			s.logger.Info().Msg("Cancellation received, stopping sampler")
			break
		}

		sample, err := s.tick(context.WithoutCancel(ctx))
		if err == nil {
			err = session.Append(sample)
		}
		if err != nil {
			s.transition(Draining)
			return session, errFactory.Wrap(ErrTickFailed, err).WithData(struct {
				Tick int
			}{
				Tick: session.Len() + 1,
			})
		}

		s.logSample(session.Len(), sample)
		s.sleep(ctx)
	}

	s.transition(Draining)
	s.logger.Info().Int("samples", session.Len()).Msg("Sampler drained")

	return session, nil
}

func (s *Sampler) tick(ctx context.Context) (telemetry.Sample, error) {
	timestamp := s.now()

	cores, err := s.cores.Collect(ctx)
	if err != nil {
		return telemetry.Sample{}, err
	}

	reading, err := s.sensors.Read(ctx)
	if err != nil {
		return telemetry.Sample{}, err
	}

	storageTemp, err := s.storage.Read(ctx)
	if err != nil {
		return telemetry.Sample{}, err
	}

	return telemetry.Sample{
		Timestamp:   timestamp,
		Cores:       cores,
		Sensors:     reading,
		StorageTemp: storageTemp,
	}, nil
}

func (s *Sampler) sleep(ctx context.Context) {
	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Sampler) transition(next State) {
	if s.state == next {
		return
	}

	s.logger.Debug().
		Str("from", s.state.String()).
		Str("to", next.String()).
		Msg("Sampler state changed")
	s.state = next
}

func (s *Sampler) logSample(n int, sample telemetry.Sample) {
	s.logger.Debug().
		Int("sample", n).
		Interface("cores", sample.Cores).
		Float64("cpu_usage", sample.MeanUtilization()).
		Int("cpu_temp", sample.Sensors.CPUTemp).
		Int("motherboard_temp", sample.Sensors.MotherboardTemp).
		Int("chipset_temp", sample.Sensors.ChipsetTemp).
		Int("cpu_fan", sample.Sensors.CPUFan).
		Int("chassis_fan", sample.Sensors.ChassisFan).
		Int("storage_temp", sample.StorageTemp).
		Msg("Sample collected")
}
