package telemetry_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/pemon/internal/errors"
	"codeberg.org/mutker/pemon/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(cores ...float64) telemetry.Sample {
	s := telemetry.Sample{Timestamp: time.Unix(1700000000, 0)}
	for i, u := range cores {
		s.Cores = append(s.Cores, telemetry.CoreSample{ID: i + 1, FrequencyMHz: 1000 * float64(i+1), Utilization: u})
	}

	return s
}

func TestAppendKeepsOrder(t *testing.T) {
	var log telemetry.SessionLog

	for i := 0; i < 3; i++ {
		s := sample(10, 20)
		s.StorageTemp = 30 + i
		require.NoError(t, log.Append(s))
	}

	require.Equal(t, 3, log.Len())
	assert.Equal(t, 2, log.CoreCount())

	samples := log.Samples()
	for i, s := range samples {
		assert.Equal(t, 30+i, s.StorageTemp)
	}
}

func TestAppendCopiesCores(t *testing.T) {
	var log telemetry.SessionLog

	s := sample(10)
	require.NoError(t, log.Append(s))
	s.Cores[0].Utilization = 99

	assert.Equal(t, 10.0, log.Samples()[0].Cores[0].Utilization)

	out := log.Samples()
	out[0].Cores[0].Utilization = 42
	assert.Equal(t, 10.0, log.Samples()[0].Cores[0].Utilization)
}

func TestAppendRejectsInvalidSamples(t *testing.T) {
	var log telemetry.SessionLog

	err := log.Append(telemetry.Sample{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, telemetry.ErrInvalidSample))

	require.NoError(t, log.Append(sample(1, 2)))

	err = log.Append(sample(1, 2, 3))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, telemetry.ErrCoreCountChanged))
	assert.Equal(t, 1, log.Len())
}

func TestEmptyLog(t *testing.T) {
	var log telemetry.SessionLog

	assert.Equal(t, 0, log.Len())
	assert.Equal(t, 0, log.CoreCount())
	assert.Empty(t, log.Samples())
}

func TestSampleMeans(t *testing.T) {
	s := sample(10, 30)

	assert.InDelta(t, 20.0, s.MeanUtilization(), 1e-9)
	assert.InDelta(t, 1500.0, s.MeanFrequency(), 1e-9)

	assert.Equal(t, 0.0, telemetry.Sample{}.MeanUtilization())
	assert.Equal(t, 0.0, telemetry.Sample{}.MeanFrequency())
}
