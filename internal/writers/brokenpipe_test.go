package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write stdout: %w", syscall.EPIPE)) {
		t.Error("wrapped EPIPE not detected")
	}
	if !IsBrokenPipe(io.ErrClosedPipe) {
		t.Error("io.ErrClosedPipe not detected")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Error("false positive")
	}
}
