package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeMapsKind(t *testing.T) {
	assert.Equal(t, 1, ExitCode(New(InvalidInput, "bad shape")))
	assert.Equal(t, 2, ExitCode(New(IndexError, "out of range")))
	assert.Equal(t, 3, ExitCode(New(MemoryError, "alloc failed")))
	assert.Equal(t, 4, ExitCode(New(FileError, "open failed")))
	assert.Equal(t, 5, ExitCode(New(ValueError, "bad config")))
}

func TestExitCodeDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, ExitCode(errors.New("not a taxonomy error")))
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(FileError, "reading token_embed.bin", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "FileError")
}

func TestNewf(t *testing.T) {
	err := Newf(InvalidInput, "shape mismatch: got [%d,%d]", 3, 4)
	assert.Equal(t, "InvalidInput: shape mismatch: got [3,4]", err.Error())
}
