// core/cipher/rotor.go
package cipher

import "fmt"

// Positions is the rotor state: one counter per rotor, each in [0, Size).
type Positions []int

// Step advances the state like an odometer: the first counter moves on every
// call and carries into the next one when it wraps to zero.
func (p Positions) Step() {
	for i := range p {
		p[i]++
		if p[i] < Size {
			return
		}
		p[i] = 0
	}
}

// Clone returns an independent copy.
func (p Positions) Clone() Positions { return append(Positions(nil), p...) }

// String renders the positions as the symbols shown in the rotor windows.
func (p Positions) String() string {
	b := make([]byte, len(p))
	for i, v := range p {
		b[i] = Symbol(v)
	}
	return string(b)
}

// ParsePositions converts window symbols such as "K1x" into counters.
func ParsePositions(s string) (Positions, error) {
	p := make(Positions, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := Index(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadPosition, s[i], i)
		}
		p[i] = v
	}
	return p, nil
}

// Period is the number of steps after which n rotors return to their start.
func Period(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= Size
	}
	return out
}
