package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"codeberg.org/mutker/pemon/internal/config"
	"codeberg.org/mutker/pemon/internal/cpu"
	"codeberg.org/mutker/pemon/internal/errors"
	"codeberg.org/mutker/pemon/internal/logger"
	"codeberg.org/mutker/pemon/internal/report"
	"codeberg.org/mutker/pemon/internal/sampler"
	"codeberg.org/mutker/pemon/internal/sensors"
	"codeberg.org/mutker/pemon/internal/storage"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	logger.Init(level, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	log := logger.Default()
	interval := time.Duration(cfg.Interval) * time.Second

	s, err := sampler.New(
		sampler.Config{Interval: interval},
		cpu.NewCollector(cpu.NewProcSource(cfg.Proc.CPUInfo, cfg.Proc.Stat), log),
		sensors.NewCommandReader(cfg.Sensors.Command, sensorLabels(cfg.Sensors.Labels), nil),
		storage.NewNVMeReader(cfg.Storage.Command, cfg.Storage.Device, nil),
		log,
	)
	if err != nil {
		logError(err, "failed to initialize sampler")
		os.Exit(1)
	}

	logger.Info().Int("interval", cfg.Interval).Msg("pemon starts running...")

	started := time.Now()
	session, err := s.Run(ctx)
	if err != nil {
		if errors.HasCode(err, sampler.ErrSetupFailed) {
			logError(err, "sampler setup failed")
			os.Exit(1)
		}
		logError(err, "sampling stopped early")
	}

	r, err := report.Summarize(session)
	if err != nil {
		logError(err, "no report produced")
		logger.Info().Msg("Exiting...")
		return
	}

	if err := printReport(ctx, r, started, interval); err != nil {
		logError(err, "failed to print report")
	}

	logger.Info().Msg("Exiting...")
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGINT, unix.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func printReport(ctx context.Context, r report.Report, started time.Time, interval time.Duration) error {
	header := report.Header{
		Interval: interval,
		Started:  started,
		Duration: time.Since(started),
	}

	// Host details only decorate the report
	info, err := host.InfoWithContext(context.WithoutCancel(ctx))
	if err == nil {
		header.Hostname = info.Hostname
		header.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		header.Kernel = info.KernelVersion
	} else {
		logger.Warn().Err(errors.New().Wrap(errors.ErrHostInfo, err)).Msg("failed to read host information")
	}

	if err := report.Render(os.Stdout, header, r); err != nil {
		return errors.New().Wrap(errors.ErrReport, err)
	}

	return nil
}

func logError(err error, msg string) {
	var coded errors.Error
	if errors.As(err, &coded) {
		logger.ErrorWithCode(coded).Msg(msg)
		return
	}
	logger.Error().Err(err).Msg(msg)
}

func sensorLabels(l config.SensorLabels) sensors.Labels {
	return sensors.Labels{
		CPUTemp:         l.CPUTemp,
		MotherboardTemp: l.MotherboardTemp,
		ChipsetTemp:     l.ChipsetTemp,
		CPUFan:          l.CPUFan,
		ChassisFan:      l.ChassisFan,
	}
}
