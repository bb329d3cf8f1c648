package sampler

import "codeberg.org/mutker/pemon/internal/errors"

const (
	ErrInvalidInterval = errors.ErrInvalidInterval
	ErrInvalidArgument = errors.ErrInvalidArgument

	ErrSetupFailed = errors.ErrorCode("sampler_setup_failed")
	ErrTickFailed  = errors.ErrorCode("sampler_tick_failed")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrSetupFailed: "Sampler setup failed",
		ErrTickFailed:  "Sampling tick failed",
	})
}
