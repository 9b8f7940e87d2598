// core/cipher/permutation.go
package cipher

import (
	"fmt"
	"strings"
)

// Permutation maps alphabet positions to alphabet positions.
type Permutation [Size]uint8

// Identity returns the permutation that leaves every position in place.
func Identity() Permutation {
	var p Permutation
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// At returns p(i).
func (p *Permutation) At(i int) int { return int(p[i]) }

// Inverse returns p⁻¹. The result is only meaningful when p is a bijection.
func (p *Permutation) Inverse() Permutation {
	var inv Permutation
	for i, v := range p {
		inv[v] = uint8(i)
	}
	return inv
}

// IsBijection reports whether every position is hit exactly once.
func (p *Permutation) IsBijection() bool {
	var seen [Size]bool
	for _, v := range p {
		if int(v) >= Size || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// IsInvolution reports whether p(p(i)) == i for all i.
func (p *Permutation) IsInvolution() bool {
	for i, v := range p {
		if int(v) >= Size || int(p[v]) != i {
			return false
		}
	}
	return true
}

// FixedPoints returns the positions i with p(i) == i.
func (p *Permutation) FixedPoints() []int {
	var out []int
	for i, v := range p {
		if int(v) == i {
			out = append(out, i)
		}
	}
	return out
}

// String renders the wiring as the image of '!'..'~'.
func (p *Permutation) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, v := range p {
		b.WriteByte(Symbol(int(v)))
	}
	return b.String()
}

// NewWiring parses a rotor wiring: Size symbols, the i-th being the image of
// alphabet position i.
func NewWiring(wiring string) (Permutation, error) {
	var p Permutation
	if len(wiring) != Size {
		return p, fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(wiring), Size)
	}
	var seen [Size]bool
	for i := 0; i < len(wiring); i++ {
		j, ok := Index(wiring[i])
		if !ok {
			return p, fmt.Errorf("%w: %q at %d", ErrInvalidSymbol, wiring[i], i)
		}
		if seen[j] {
			return p, fmt.Errorf("%w: %q repeated at %d", ErrNotPermutation, wiring[i], i)
		}
		seen[j] = true
		p[i] = uint8(j)
	}
	return p, nil
}

// NewPlugboard parses space-separated symbol pairs such as "ab c8". Unpaired
// symbols map to themselves.
func NewPlugboard(pairs string) (Permutation, error) {
	p := Identity()
	var used [Size]bool
	for _, tok := range strings.Fields(pairs) {
		if len(tok) != 2 {
			return p, fmt.Errorf("%w: pair %q must be two symbols", ErrNotInvolution, tok)
		}
		a, okA := Index(tok[0])
		b, okB := Index(tok[1])
		if !okA || !okB {
			return p, fmt.Errorf("%w: pair %q", ErrInvalidSymbol, tok)
		}
		if a == b {
			return p, fmt.Errorf("%w: pair %q joins a symbol to itself", ErrFixedPoint, tok)
		}
		if used[a] || used[b] {
			return p, fmt.Errorf("%w: pair %q reuses a symbol", ErrNotInvolution, tok)
		}
		used[a], used[b] = true, true
		p[a], p[b] = uint8(b), uint8(a)
	}
	return p, nil
}

// NewReflector parses Size/2 disjoint pairs covering the whole alphabet.
func NewReflector(pairs string) (Permutation, error) {
	p, err := NewPlugboard(pairs)
	if err != nil {
		return p, err
	}
	if fp := p.FixedPoints(); len(fp) > 0 {
		return p, fmt.Errorf("%w: %d unpaired symbols, first %q", ErrFixedPoint, len(fp), Symbol(fp[0]))
	}
	return p, nil
}
