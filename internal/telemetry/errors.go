package telemetry

import "codeberg.org/mutker/pemon/internal/errors"

const (
	ErrInvalidSample    = errors.ErrorCode("telemetry_invalid_sample")
	ErrCoreCountChanged = errors.ErrorCode("telemetry_core_count_changed")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrInvalidSample:    "Invalid telemetry sample",
		ErrCoreCountChanged: "Sample core count differs from session",
	})
}
