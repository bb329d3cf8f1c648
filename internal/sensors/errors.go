package sensors

import "codeberg.org/mutker/pemon/internal/errors"

const (
	ErrReadingMissing = errors.ErrorCode("sensors_reading_missing")
	ErrParseFailed    = errors.ErrorCode("sensors_parse_failed")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrReadingMissing: "Sensor reading not found in output",
		ErrParseFailed:    "Failed to parse sensor reading",
	})
}
