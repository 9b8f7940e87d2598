// core/cipher/machine.go
package cipher

import "fmt"

// Policy decides what Transform does with bytes outside the alphabet.
type Policy int

const (
	// PolicyReject fails the call with a *SymbolError.
	PolicyReject Policy = iota
	// PolicyPassThrough returns the byte unchanged.
	PolicyPassThrough
)

func (p Policy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyPassThrough:
		return "pass-through"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithPolicy sets the out-of-alphabet policy (default PolicyReject).
func WithPolicy(p Policy) Option { return func(m *Machine) { m.policy = p } }

type rotor struct {
	fwd Permutation
	inv Permutation
}

// Machine is one rotor machine with its own mutable state.
// It is not safe for concurrent use; give each run its own Machine.
type Machine struct {
	rotors    []rotor
	reflector Permutation
	plugboard Permutation
	start     Positions
	pos       Positions
	policy    Policy
	count     int // symbols transformed since the last Reset
}

// New builds a Machine from validated tables and start counters.
func New(t Tables, start []int, opts ...Option) (*Machine, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if len(start) != len(t.Rotors) {
		return nil, fmt.Errorf("%w: %d positions for %d rotors", ErrBadPosition, len(start), len(t.Rotors))
	}
	for i, v := range start {
		if v < 0 || v >= Size {
			return nil, fmt.Errorf("%w: rotor %d at %d", ErrBadPosition, i, v)
		}
	}

	m := &Machine{
		rotors:    make([]rotor, len(t.Rotors)),
		reflector: t.Reflector,
		plugboard: Identity(),
		start:     Positions(start).Clone(),
		pos:       Positions(start).Clone(),
	}
	for i := range t.Rotors {
		m.rotors[i] = rotor{fwd: t.Rotors[i], inv: t.Rotors[i].Inverse()}
	}
	if t.Plugboard != nil {
		m.plugboard = *t.Plugboard
	}
	for _, o := range opts {
		o(m)
	}
	return m, nil
}

// NewFromSymbols is New with the start positions given as window symbols.
func NewFromSymbols(t Tables, start string, opts ...Option) (*Machine, error) {
	p, err := ParsePositions(start)
	if err != nil {
		return nil, err
	}
	return New(t, p, opts...)
}

// NewStandard builds a Machine on the production tables and start positions.
func NewStandard(opts ...Option) (*Machine, error) {
	return NewFromSymbols(Standard(), StartPositions, opts...)
}

// Transform steps the rotors, then sends b through plugboard, rotors,
// reflector, rotors in reverse, and plugboard again.
// The state advances even when b is rejected or passed through.
func (m *Machine) Transform(b byte) (byte, error) {
	m.pos.Step()
	off := m.count
	m.count++

	x, ok := Index(b)
	if !ok {
		if m.policy == PolicyPassThrough {
			return b, nil
		}
		return b, &SymbolError{Offset: off, Byte: b}
	}

	x = m.plugboard.At(x)
	for i := range m.rotors {
		p := m.pos[i]
		x = mod(m.rotors[i].fwd.At(mod(x+p)) - p)
	}
	x = m.reflector.At(x)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		p := m.pos[i]
		x = mod(m.rotors[i].inv.At(mod(x+p)) - p)
	}
	x = m.plugboard.At(x)
	return Symbol(x), nil
}

// TransformAll runs every byte of src through Transform. Under PolicyReject
// it keeps going past invalid bytes so the state always advances len(src)
// steps; the first *SymbolError is returned alongside the full output.
func (m *Machine) TransformAll(src []byte) ([]byte, error) {
	out := make([]byte, len(src))
	var first error
	for i, b := range src {
		c, err := m.Transform(b)
		if err != nil && first == nil {
			first = err
		}
		out[i] = c
	}
	return out, first
}

// Positions returns a copy of the current rotor state.
func (m *Machine) Positions() Positions { return m.pos.Clone() }

// Count returns the number of symbols transformed since the last Reset.
func (m *Machine) Count() int { return m.count }

// Policy returns the configured out-of-alphabet policy.
func (m *Machine) Policy() Policy { return m.policy }

// Reset returns the rotors to their start positions.
func (m *Machine) Reset() {
	copy(m.pos, m.start)
	m.count = 0
}
