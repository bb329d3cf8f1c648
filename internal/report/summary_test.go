package report_test

import (
	"testing"

	"codeberg.org/mutker/pemon/internal/errors"
	"codeberg.org/mutker/pemon/internal/report"
	"codeberg.org/mutker/pemon/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(t *testing.T, storageTemps ...int) telemetry.SessionLog {
	t.Helper()

	var log telemetry.SessionLog
	for i, temp := range storageTemps {
		require.NoError(t, log.Append(telemetry.Sample{
			Cores: []telemetry.CoreSample{
				{ID: 1, FrequencyMHz: 800, Utilization: float64(10 * i)},
				{ID: 2, FrequencyMHz: 3200, Utilization: float64(30 * i)},
			},
			Sensors: telemetry.SensorReading{
				CPUTemp:         35 + 10*i,
				MotherboardTemp: 30,
				ChipsetTemp:     55,
				CPUFan:          900 + 700*i,
				ChassisFan:      600,
			},
			StorageTemp: temp,
		}))
	}

	return log
}

func TestSummarizeStorageScenario(t *testing.T) {
	r, err := report.Summarize(session(t, 25, 35, 55, 75))
	require.NoError(t, err)

	assert.Equal(t, 4, r.Samples)
	assert.Equal(t, 2, r.Cores)

	storage, ok := r.Metric("storage_temp")
	require.True(t, ok)
	assert.Equal(t, "°C", storage.Unit)
	assert.InDelta(t, 47.5, storage.Mean, 1e-9)
	assert.Equal(t, 25.0, storage.Min)
	assert.Equal(t, 75.0, storage.Max)

	require.Len(t, storage.Buckets, 4)
	labels := []string{"<30", "30-50", "50-70", ">=70"}
	for i, b := range storage.Buckets {
		assert.Equal(t, labels[i], b.Label)
		assert.Equal(t, 1, b.Count)
		assert.InDelta(t, 25.0, b.Percent, 1e-9)
	}
}

func TestSummarizeSensorMetrics(t *testing.T) {
	r, err := report.Summarize(session(t, 40, 40, 40, 40))
	require.NoError(t, err)

	cpuTemp, ok := r.Metric("cpu_temp")
	require.True(t, ok)
	// 35, 45, 55, 65
	assert.InDelta(t, 50.0, cpuTemp.Mean, 1e-9)
	assert.Equal(t, []int{1, 2, 1, 0, 0}, counts(cpuTemp))

	fan, ok := r.Metric("cpu_fan")
	require.True(t, ok)
	// 900, 1600, 2300, 3000
	assert.Equal(t, 900.0, fan.Min)
	assert.Equal(t, 3000.0, fan.Max)
	assert.Equal(t, []int{1, 1, 1, 1}, counts(fan), "3000 falls into the open-ended bucket")

	chassis, ok := r.Metric("chassis_fan")
	require.True(t, ok)
	assert.Equal(t, []int{0, 4, 0, 0}, counts(chassis))

	usage, ok := r.Metric("cpu_usage")
	require.True(t, ok)
	// per sample means 0, 20, 40, 60
	assert.InDelta(t, 30.0, usage.Mean, 1e-9)
	assert.Equal(t, []int{2, 1, 1, 0}, counts(usage))

	freq, ok := r.Metric("cpu_freq")
	require.True(t, ok)
	assert.InDelta(t, 2000.0, freq.Mean, 1e-9)
	assert.Equal(t, []int{0, 0, 4, 0, 0}, counts(freq))
}

func TestSummarizeBucketsAreExhaustive(t *testing.T) {
	r, err := report.Summarize(session(t, 0, 29, 30, 49, 50, 69, 70, 1000))
	require.NoError(t, err)

	for _, m := range r.Metrics {
		var total int
		var percent float64
		for _, b := range m.Buckets {
			total += b.Count
			percent += b.Percent
		}
		assert.Equal(t, r.Samples, total, m.Name)
		assert.InDelta(t, 100.0, percent, 1e-9, m.Name)
	}

	storage, _ := r.Metric("storage_temp")
	assert.Equal(t, []int{2, 2, 2, 2}, counts(storage), "bounds belong to the upper bucket")
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := report.Summarize(telemetry.SessionLog{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, report.ErrEmptySessionLog))
}

func TestSummarizeDeterministic(t *testing.T) {
	log := session(t, 25, 35, 55, 75)

	first, err := report.Summarize(log)
	require.NoError(t, err)
	second, err := report.Summarize(log)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSummarizeMetricOrderIndependent(t *testing.T) {
	log := session(t, 25, 35, 55, 75)

	metrics := report.DefaultMetrics()
	reversed := make([]report.Metric, len(metrics))
	for i, m := range metrics {
		reversed[len(metrics)-1-i] = m
	}

	forward, err := report.SummarizeWith(log, metrics)
	require.NoError(t, err)
	backward, err := report.SummarizeWith(log, reversed)
	require.NoError(t, err)

	for _, m := range forward.Metrics {
		other, ok := backward.Metric(m.Name)
		require.True(t, ok)
		assert.Equal(t, m, other)
	}
}

func TestSummarizeInvalidBounds(t *testing.T) {
	log := session(t, 30)

	for _, bounds := range [][]float64{nil, {50, 30}, {30, 30}} {
		_, err := report.SummarizeWith(log, []report.Metric{{
			Name:   "storage_temp",
			Bounds: bounds,
			Value:  func(s telemetry.Sample) float64 { return float64(s.StorageTemp) },
		}})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, report.ErrInvalidBuckets))
	}
}

func TestMetricNotFound(t *testing.T) {
	_, ok := report.Report{}.Metric("gpu_temp")
	assert.False(t, ok)
}

func counts(s report.Summary) []int {
	out := make([]int, len(s.Buckets))
	for i, b := range s.Buckets {
		out[i] = b.Count
	}
	return out
}
