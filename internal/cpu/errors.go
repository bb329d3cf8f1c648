package cpu

import "codeberg.org/mutker/pemon/internal/errors"

const (
	// Counter table errors
	ErrCounterLineNotFound = errors.ErrorCode("cpu_counter_line_not_found")
	ErrCounterParse        = errors.ErrorCode("cpu_counter_parse_failed")

	// CPU descriptor errors
	ErrFrequencyLineMalformed = errors.ErrorCode("cpu_frequency_line_malformed")
	ErrCoreCountMismatch      = errors.ErrorCode("cpu_core_count_mismatch")
	ErrNoCores                = errors.ErrorCode("cpu_no_cores")

	// Delta errors
	ErrZeroIntervalCounters = errors.ErrorCode("cpu_zero_interval_counters")
	ErrCounterRegression    = errors.ErrorCode("cpu_counter_regression")
	ErrCoreCountChanged     = errors.ErrorCode("cpu_core_count_changed")

	// Collector errors
	ErrNotInitialized = errors.ErrorCode("cpu_not_initialized")
	ErrSourceRead     = errors.ErrorCode("cpu_source_read_failed")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrCounterLineNotFound:    "CPU counter line not found",
		ErrCounterParse:           "Failed to parse CPU counter line",
		ErrFrequencyLineMalformed: "Malformed CPU frequency line",
		ErrCoreCountMismatch:      "CPU frequency entries do not match processor count",
		ErrNoCores:                "No processors found in CPU descriptor",
		ErrZeroIntervalCounters:   "CPU counters did not advance",
		ErrCounterRegression:      "CPU counters went backwards",
		ErrCoreCountChanged:       "Number of CPU cores changed",
		ErrNotInitialized:         "CPU collector not initialized",
		ErrSourceRead:             "Failed to read CPU source",
	})
}
