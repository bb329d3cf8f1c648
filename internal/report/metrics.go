package report

import "codeberg.org/mutker/pemon/internal/telemetry"

// Metric describes one scalar series extracted from every sample and the
// fixed bucket bounds used for its distribution.
type Metric struct {
	Name   string
	Unit   string
	Bounds []float64
	Value  func(telemetry.Sample) float64
}

var temperatureBounds = []float64{40, 60, 70, 80}

// DefaultMetrics is the metric table used by Summarize, in report order.
func DefaultMetrics() []Metric {
	return []Metric{
		{
			Name:   "cpu_temp",
			Unit:   "°C",
			Bounds: temperatureBounds,
			Value:  func(s telemetry.Sample) float64 { return float64(s.Sensors.CPUTemp) },
		},
		{
			Name:   "motherboard_temp",
			Unit:   "°C",
			Bounds: temperatureBounds,
			Value:  func(s telemetry.Sample) float64 { return float64(s.Sensors.MotherboardTemp) },
		},
		{
			Name:   "chipset_temp",
			Unit:   "°C",
			Bounds: temperatureBounds,
			Value:  func(s telemetry.Sample) float64 { return float64(s.Sensors.ChipsetTemp) },
		},
		{
			Name:   "cpu_fan",
			Unit:   "RPM",
			Bounds: []float64{1000, 2000, 3000},
			Value:  func(s telemetry.Sample) float64 { return float64(s.Sensors.CPUFan) },
		},
		{
			Name:   "chassis_fan",
			Unit:   "RPM",
			Bounds: []float64{500, 1000, 1500},
			Value:  func(s telemetry.Sample) float64 { return float64(s.Sensors.ChassisFan) },
		},
		{
			Name:   "storage_temp",
			Unit:   "°C",
			Bounds: []float64{30, 50, 70},
			Value:  func(s telemetry.Sample) float64 { return float64(s.StorageTemp) },
		},
		{
			Name:   "cpu_usage",
			Unit:   "%",
			Bounds: []float64{25, 50, 75},
			Value:  telemetry.Sample.MeanUtilization,
		},
		{
			Name:   "cpu_freq",
			Unit:   "MHz",
			Bounds: []float64{1000, 2000, 3000, 4000},
			Value:  telemetry.Sample.MeanFrequency,
		},
	}
}
