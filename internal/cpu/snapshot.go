package cpu

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/pemon/internal/errors"
)

const (
	requiredCounters = 9
	maxCounters      = 10
)

// Snapshot holds one core's cumulative time counters from the kernel
// counter table, in jiffies.
type Snapshot struct {
	User      uint64
	Nice      uint64
	System    uint64
	Idle      uint64
	IOWait    uint64
	IRQ       uint64
	SoftIRQ   uint64
	Steal     uint64
	Guest     uint64
	GuestNice uint64
}

// Total returns the sum of all counters.
func (s Snapshot) Total() uint64 {
	return s.User + s.Nice + s.System + s.Idle + s.IOWait +
		s.IRQ + s.SoftIRQ + s.Steal + s.Guest + s.GuestNice
}

// ParseSnapshot extracts the counters of core index from the counter table.
// Only a line whose label is exactly cpu<index> matches.
func ParseSnapshot(table string, index int) (Snapshot, error) {
	label := coreLabel(index)

	for line := range strings.SplitSeq(table, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != label {
			continue
		}

		return parseCounters(label, fields[1:])
	}

	return Snapshot{}, errors.New().WithData(ErrCounterLineNotFound, label)
}

// ParseSnapshots extracts the counters of cores 0..count-1 in a single
// pass over the table.
func ParseSnapshots(table string, count int) ([]Snapshot, error) {
	lines := make(map[string][]string, count)

	for line := range strings.SplitSeq(table, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || !strings.HasPrefix(fields[0], "cpu") {
			continue
		}
		if _, seen := lines[fields[0]]; !seen {
			lines[fields[0]] = fields[1:]
		}
	}

	snapshots := make([]Snapshot, count)
	for i := range snapshots {
		label := coreLabel(i)

		fields, ok := lines[label]
		if !ok {
			return nil, errors.New().WithData(ErrCounterLineNotFound, label)
		}

		s, err := parseCounters(label, fields)
		if err != nil {
			return nil, err
		}
		snapshots[i] = s
	}

	return snapshots, nil
}

func parseCounters(label string, fields []string) (Snapshot, error) {
	errFactory := errors.New()

	if len(fields) < requiredCounters {
		return Snapshot{}, errFactory.WithData(ErrCounterParse, struct {
			Label  string
			Fields int
		}{
			Label:  label,
			Fields: len(fields),
		})
	}

	var values [maxCounters]uint64
	for i := 0; i < len(fields) && i < maxCounters; i++ {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return Snapshot{}, errFactory.Wrap(ErrCounterParse, err).WithData(struct {
				Label string
				Field int
				Value string
			}{
				Label: label,
				Field: i,
				Value: fields[i],
			})
		}
		values[i] = v
	}

	return Snapshot{
		User:      values[0],
		Nice:      values[1],
		System:    values[2],
		Idle:      values[3],
		IOWait:    values[4],
		IRQ:       values[5],
		SoftIRQ:   values[6],
		Steal:     values[7],
		Guest:     values[8],
		GuestNice: values[9],
	}, nil
}

func coreLabel(index int) string {
	return "cpu" + strconv.Itoa(index)
}
