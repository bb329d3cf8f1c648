package storage

import "codeberg.org/mutker/pemon/internal/errors"

const (
	ErrTemperatureMissing = errors.ErrorCode("storage_temperature_missing")
	ErrParseFailed        = errors.ErrorCode("storage_parse_failed")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrTemperatureMissing: "Storage temperature not found in output",
		ErrParseFailed:        "Failed to parse storage temperature",
	})
}
