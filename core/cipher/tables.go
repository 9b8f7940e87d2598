// core/cipher/tables.go
package cipher

import "fmt"

// Fixed production wirings. Changing any of these invalidates every stored
// ciphertext.
const (
	RotorI   = "k:N!CJ_.eo=Q}$DM6K4H'FUa*;L-^g3,c9%rsbI7#~l0x1XRBi[/<WE@ph{wYfvT`\\Gj>y+8O2&\"SnzVuqmd]?|A)Zt(P5"
	RotorII  = "}PFK4i!Z0ORX5<n,-\\?#]%Lj^`@QGsN(mJCuM_or67y8)fBawqWl3$tkI&VvY2:h;\"D{ed.[+cHES>=*z'x|1T/bAUpg9~"
	RotorIII = "W3t<fDuQ:Zq/a_{l]|!$\"16[*&%0=ky5P+Fbg)YEiA^R7}.8T2Kew\\(BVo4CUm9LGjnO?~dpxc#NMs`'h-rH>I;,zJSv@X"

	ReflectorA = "iE vS 7V nX =C ax \\, .f jN zK y@ s0 p$ t6 1w {] g& #q b) \"; +L lJ cT P9 " +
		"Qh >d H` |Y ?A *_ M- OR Uo Ze %I r! ~W FD 2u }G [4 8< (5 k/ 'B ^: 3m"

	PlugboardPairs = "ou hW $S 5O r8 ^Y zV 6v ,d <&"

	// StartPositions are the symbols shown in the rotor windows, rotor I first.
	StartPositions = "K1x"
)

// Tables is the fixed wiring a Machine runs on. Rotors[0] is the fast rotor
// nearest the plugboard. A nil Plugboard acts as the identity.
type Tables struct {
	Rotors    []Permutation
	Reflector Permutation
	Plugboard *Permutation
}

// Validate checks every table invariant: each rotor is a bijection, the
// reflector is a fixed-point-free involution and the plugboard an involution.
func (t Tables) Validate() error {
	if len(t.Rotors) == 0 {
		return ErrNoRotors
	}
	for i := range t.Rotors {
		if !t.Rotors[i].IsBijection() {
			return fmt.Errorf("rotor %d: %w", i, ErrNotPermutation)
		}
	}
	if !t.Reflector.IsInvolution() {
		return fmt.Errorf("reflector: %w", ErrNotInvolution)
	}
	if fp := t.Reflector.FixedPoints(); len(fp) > 0 {
		return fmt.Errorf("reflector: %w (%q)", ErrFixedPoint, Symbol(fp[0]))
	}
	if t.Plugboard != nil && !t.Plugboard.IsInvolution() {
		return fmt.Errorf("plugboard: %w", ErrNotInvolution)
	}
	return nil
}

// Standard returns a fresh copy of the production tables.
func Standard() Tables {
	return Tables{
		Rotors:    []Permutation{mustWiring(RotorI), mustWiring(RotorII), mustWiring(RotorIII)},
		Reflector: mustParse(NewReflector(ReflectorA)),
		Plugboard: ptr(mustParse(NewPlugboard(PlugboardPairs))),
	}
}

func mustWiring(s string) Permutation { return mustParse(NewWiring(s)) }

func mustParse(p Permutation, err error) Permutation {
	if err != nil {
		panic("cipher: bad built-in table: " + err.Error())
	}
	return p
}

func ptr(p Permutation) *Permutation { return &p }
