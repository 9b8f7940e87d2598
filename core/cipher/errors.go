package cipher

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol  = errors.New("symbol outside alphabet")
	ErrNotPermutation = errors.New("wiring is not a permutation")
	ErrNotInvolution  = errors.New("table is not an involution")
	ErrFixedPoint     = errors.New("reflector maps a symbol to itself")
	ErrBadPosition    = errors.New("bad rotor position")
	ErrNoRotors       = errors.New("at least one rotor is required")
)

// SymbolError reports a byte the machine refused under PolicyReject.
type SymbolError struct {
	Offset int // position in the input, 0-based
	Byte   byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol 0x%02x at offset %d", e.Byte, e.Offset)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }
