package storage

import (
	"context"
	"strconv"
	"strings"

	"codeberg.org/mutker/pemon/internal/command"
	"codeberg.org/mutker/pemon/internal/errors"
)

const (
	DefaultCommand = "nvme"
	DefaultDevice  = "/dev/nvme0n1"

	temperatureLabel = "temperature"
)

// NVMeReader reads the drive temperature from `nvme smart-log <device>`.
type NVMeReader struct {
	command string
	device  string
	runner  command.Runner
}

func NewNVMeReader(cmd, device string, runner command.Runner) *NVMeReader {
	if cmd == "" {
		cmd = DefaultCommand
	}
	if device == "" {
		device = DefaultDevice
	}
	if runner == nil {
		runner = command.ExecRunner{}
	}

	return &NVMeReader{
		command: cmd,
		device:  device,
		runner:  runner,
	}
}

// Device returns the block device being queried.
func (r *NVMeReader) Device() string {
	return r.device
}

func (r *NVMeReader) Read(ctx context.Context) (int, error) {
	out, err := r.runner.Run(ctx, r.command, "smart-log", r.device)
	if err != nil {
		return 0, err
	}

	return Parse(out)
}

// Parse returns the composite temperature from smart-log output, where the
// relevant line reads "temperature : 35 C" (or "35 °C (308 K)" on newer
// nvme-cli). Per-sensor lines such as "Temperature Sensor 1" are ignored.
func Parse(output string) (int, error) {
	errFactory := errors.New()

	for raw := range strings.SplitSeq(output, "\n") {
		label, value, found := strings.Cut(strings.TrimSpace(raw), ":")
		if !found || !strings.EqualFold(strings.TrimSpace(label), temperatureLabel) {
			continue
		}

		value = strings.TrimSpace(value)
		end := 0
		for end < len(value) && value[end] >= '0' && value[end] <= '9' {
			end++
		}
		if end == 0 {
			return 0, errFactory.WithData(ErrParseFailed, raw)
		}

		temp, err := strconv.Atoi(value[:end])
		if err != nil {
			return 0, errFactory.Wrap(ErrParseFailed, err)
		}

		return temp, nil
	}

	return 0, errFactory.New(ErrTemperatureMissing)
}
