package errors_test

import (
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/pemon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.New(errors.ErrInvalidInterval)
	assert.Equal(t, "Invalid interval value", err.Error())

	err = errFactory.WithData(errors.ErrInvalidInterval, 0)
	assert.Equal(t, "Invalid interval value: 0", err.Error())

	err = errFactory.Wrap(errors.ErrReadConfig, stderrors.New("boom"))
	assert.Equal(t, "Failed to read config file: boom", err.Error())

	err = errFactory.WithMessage(errors.ErrInternal, "custom")
	assert.Equal(t, "custom", err.Error())
	assert.Equal(t, errors.ErrInternal, err.Code())
}

func TestUnknownCodeFallsBackToCode(t *testing.T) {
	err := errors.New().New(errors.ErrorCode("something_odd"))
	assert.Equal(t, "something_odd", err.Error())
}

func TestWithDataKeepsCause(t *testing.T) {
	cause := stderrors.New("cause")
	err := errors.New().Wrap(errors.ErrInternal, cause).WithData("detail")

	assert.Equal(t, "detail", err.GetData())
	assert.True(t, errors.Is(err, cause))
}

func TestHasCode(t *testing.T) {
	errFactory := errors.New()
	inner := errFactory.New(errors.ErrInvalidInterval)
	outer := errFactory.Wrap(errors.ErrInternal, inner)

	assert.True(t, errors.HasCode(outer, errors.ErrInternal))
	assert.True(t, errors.HasCode(outer, errors.ErrInvalidInterval))
	assert.False(t, errors.HasCode(outer, errors.ErrReport))
	assert.False(t, errors.HasCode(stderrors.New("plain"), errors.ErrInvalidArgument))
	assert.False(t, errors.HasCode(nil, errors.ErrInvalidArgument))

	code, ok := errors.CodeOf(outer)
	require.True(t, ok)
	assert.Equal(t, errors.ErrInternal, code)
}

func TestRegisterMessages(t *testing.T) {
	code := errors.ErrorCode("errors_test_registered")
	errors.RegisterMessages(map[errors.ErrorCode]string{code: "Registered message"})

	assert.Equal(t, "Registered message", errors.GetErrorMessage(code))
}

func TestErrorIncludesDataAndCause(t *testing.T) {
	err := errors.New().Wrap(errors.ErrCommandFailed, stderrors.New("exit status 1")).WithData("nvme smart-log")
	assert.Equal(t, "External command failed: nvme smart-log: exit status 1", err.Error())

	copied := err.WithMessage("other")
	assert.Equal(t, "other: nvme smart-log: exit status 1", copied.Error())
	assert.Equal(t, "External command failed: nvme smart-log: exit status 1", err.Error(), "WithMessage must not modify the original")
}

type foreignCoded struct{}

func (foreignCoded) Error() string          { return "foreign" }
func (foreignCoded) Code() errors.ErrorCode { return errors.ErrInvalidArgument }

func TestHasCodeMatchesAnyCoder(t *testing.T) {
	assert.True(t, errors.HasCode(foreignCoded{}, errors.ErrInvalidArgument))

	code, ok := errors.CodeOf(foreignCoded{})
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidArgument, code)
}
