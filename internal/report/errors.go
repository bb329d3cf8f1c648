package report

import "codeberg.org/mutker/pemon/internal/errors"

const (
	ErrEmptySessionLog = errors.ErrorCode("report_empty_session_log")
	ErrInvalidBuckets  = errors.ErrorCode("report_invalid_buckets")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrEmptySessionLog: "No samples were collected",
		ErrInvalidBuckets:  "Bucket bounds must be non-empty and strictly ascending",
	})
}
