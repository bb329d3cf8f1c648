package telemetry

import "time"

// CoreSample is one core's reading for a single tick.
type CoreSample struct {
	// ID is 1-based and pairs with the counter line cpu<ID-1>.
	ID           int
	FrequencyMHz float64
	// Utilization is a percentage in [0, 100].
	Utilization float64
}

// SensorReading holds the values taken from the sensor utility.
// Temperatures are in degrees Celsius, fan speeds in RPM.
type SensorReading struct {
	CPUTemp         int
	MotherboardTemp int
	ChipsetTemp     int
	CPUFan          int
	ChassisFan      int
}

// Sample is the unit stored per tick.
type Sample struct {
	Timestamp   time.Time
	Cores       []CoreSample
	Sensors     SensorReading
	StorageTemp int
}

// MeanUtilization returns the average utilization across all cores.
func (s Sample) MeanUtilization() float64 {
	if len(s.Cores) == 0 {
		return 0
	}

	var sum float64
	for _, c := range s.Cores {
		sum += c.Utilization
	}

	return sum / float64(len(s.Cores))
}

// MeanFrequency returns the average clock frequency across all cores in MHz.
func (s Sample) MeanFrequency() float64 {
	if len(s.Cores) == 0 {
		return 0
	}

	var sum float64
	for _, c := range s.Cores {
		sum += c.FrequencyMHz
	}

	return sum / float64(len(s.Cores))
}
