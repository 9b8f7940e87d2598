// internal/secretio/reader.go
package secretio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrTooLarge is returned when the input exceeds the configured limit.
var ErrTooLarge = errors.New("input too large")

// Options controls how a candidate secret is read.
type Options struct {
	// KeepNewline disables stripping of one trailing "\n" or "\r\n".
	KeepNewline bool
	// MaxBytes caps the input size (0 = unlimited).
	MaxBytes int64
}

// ReadAll consumes r until EOF and applies the newline policy. The caller
// only ever sees a complete read: any error discards the data.
func ReadAll(r io.Reader, opt Options) ([]byte, error) {
	src := r
	if opt.MaxBytes > 0 {
		src = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, opt.MaxBytes)
	}
	if !opt.KeepNewline {
		data = TrimNewline(data)
	}
	return data, nil
}

// TrimNewline drops exactly one trailing "\n" or "\r\n". Other whitespace is
// part of the secret.
func TrimNewline(b []byte) []byte {
	if bytes.HasSuffix(b, []byte("\r\n")) {
		return b[:len(b)-2]
	}
	if bytes.HasSuffix(b, []byte("\n")) {
		return b[:len(b)-1]
	}
	return b
}
