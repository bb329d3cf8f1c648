package cpu

import (
	"math"
	"strconv"
	"strings"

	"codeberg.org/mutker/pemon/internal/errors"
)

const (
	processorKey = "processor"
	frequencyKey = "cpu MHz"
)

// Frequency is one core's clock reading from the CPU descriptor.
type Frequency struct {
	// ID is 1-based in descriptor order.
	ID  int
	MHz float64
}

// Topology is the result of enumerating the CPU descriptor.
type Topology struct {
	Cores       int
	Frequencies []Frequency
}

// Enumerate counts the logical processors in the CPU descriptor and reads
// each core's current clock. Frequency IDs follow descriptor order, so ID n
// pairs with counter index n-1.
func Enumerate(cpuinfo string) (Topology, error) {
	errFactory := errors.New()

	var topo Topology
	for raw := range strings.SplitSeq(cpuinfo, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		key = strings.TrimSpace(key)

		switch {
		case key == processorKey:
			topo.Cores++
		case strings.HasPrefix(line, frequencyKey):
			if !found {
				return Topology{}, errFactory.WithData(ErrFrequencyLineMalformed, line)
			}

			mhz, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || math.IsNaN(mhz) || math.IsInf(mhz, 0) || mhz <= 0 {
				return Topology{}, errFactory.WithData(ErrFrequencyLineMalformed, line)
			}

			topo.Frequencies = append(topo.Frequencies, Frequency{
				ID:  len(topo.Frequencies) + 1,
				MHz: mhz,
			})
		}
	}

	if topo.Cores == 0 {
		return Topology{}, errFactory.New(ErrNoCores)
	}

	if len(topo.Frequencies) != topo.Cores {
		return Topology{}, errFactory.WithData(ErrCoreCountMismatch, struct {
			Processors  int
			Frequencies int
		}{
			Processors:  topo.Cores,
			Frequencies: len(topo.Frequencies),
		})
	}

	return topo, nil
}
