package sensors

import (
	"context"
	"strconv"
	"strings"

	"codeberg.org/mutker/pemon/internal/command"
	"codeberg.org/mutker/pemon/internal/errors"
	"codeberg.org/mutker/pemon/internal/telemetry"
)

const DefaultCommand = "sensors"

// Labels names the output line holding each reading.
type Labels struct {
	CPUTemp         string
	MotherboardTemp string
	ChipsetTemp     string
	CPUFan          string
	ChassisFan      string
}

// CommandReader reads the sensor values by running the sensors utility.
type CommandReader struct {
	command string
	labels  Labels
	runner  command.Runner
}

func NewCommandReader(cmd string, labels Labels, runner command.Runner) *CommandReader {
	if cmd == "" {
		cmd = DefaultCommand
	}
	if runner == nil {
		runner = command.ExecRunner{}
	}

	return &CommandReader{
		command: cmd,
		labels:  labels,
		runner:  runner,
	}
}

func (r *CommandReader) Read(ctx context.Context) (telemetry.SensorReading, error) {
	out, err := r.runner.Run(ctx, r.command)
	if err != nil {
		return telemetry.SensorReading{}, err
	}

	return Parse(out, r.labels)
}

// Parse extracts the five readings from sensors output. Temperature lines
// look like "CPU: +45.0°C  (high = +80.0°C)", fan lines like
// "CPU Fan: 1200 RPM  (min = 600 RPM)".
func Parse(output string, labels Labels) (telemetry.SensorReading, error) {
	values := make(map[string]string)
	for raw := range strings.SplitSeq(output, "\n") {
		label, value, found := strings.Cut(strings.TrimSpace(raw), ":")
		if !found {
			continue
		}
		label = strings.TrimSpace(label)
		if _, seen := values[label]; !seen {
			values[label] = strings.TrimSpace(value)
		}
	}

	var reading telemetry.SensorReading
	fields := []struct {
		label string
		dest  *int
		parse func(string) (int, bool)
	}{
		{labels.CPUTemp, &reading.CPUTemp, parseTemperature},
		{labels.MotherboardTemp, &reading.MotherboardTemp, parseTemperature},
		{labels.ChipsetTemp, &reading.ChipsetTemp, parseTemperature},
		{labels.CPUFan, &reading.CPUFan, parseRPM},
		{labels.ChassisFan, &reading.ChassisFan, parseRPM},
	}

	errFactory := errors.New()
	for _, f := range fields {
		value, ok := values[f.label]
		if !ok {
			return telemetry.SensorReading{}, errFactory.WithData(ErrReadingMissing, f.label)
		}

		v, ok := f.parse(value)
		if !ok {
			return telemetry.SensorReading{}, errFactory.WithData(ErrParseFailed, struct {
				Label string
				Value string
			}{
				Label: f.label,
				Value: value,
			})
		}
		*f.dest = v
	}

	return reading, nil
}

// parseTemperature reads a signed decimal such as "+45.0°C" and truncates
// it to whole degrees.
func parseTemperature(value string) (int, bool) {
	token := firstField(value)
	if token == "" {
		return 0, false
	}

	switch token[0] {
	case '+':
		token = token[1:]
	case '-':
		return 0, false
	}

	end := 0
	for end < len(token) && (isDigit(token[end]) || token[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}

	temp, err := strconv.ParseFloat(token[:end], 64)
	if err != nil {
		return 0, false
	}

	return int(temp), true
}

// parseRPM reads an integer followed by the RPM unit.
func parseRPM(value string) (int, bool) {
	fields := strings.Fields(value)
	if len(fields) < 2 || !strings.EqualFold(fields[1], "RPM") {
		return 0, false
	}

	rpm, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return 0, false
	}

	return int(rpm), true
}

func firstField(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
