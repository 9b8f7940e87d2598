// core/validator/validator.go
package validator

import (
	"crypto/subtle"

	"enigma-core/cipher"
)

// Verdict is the outcome of one validation.
type Verdict int

const (
	Reject Verdict = iota
	Accept
)

// String returns the literal token printed for the verdict.
func (v Verdict) String() string {
	if v == Accept {
		return "OK!"
	}
	return "ERR"
}

// Result carries everything a validation produced.
type Result struct {
	Verdict     Verdict
	Output      []byte // transformed input, same length as the input
	InputLen    int
	ExpectedLen int
	Err         error // first *cipher.SymbolError under PolicyReject
}

// Option configures a Validator.
type Option func(*Validator)

// WithTables replaces the standard wiring.
func WithTables(t cipher.Tables) Option { return func(v *Validator) { v.tables = t } }

// WithStart replaces the standard start positions.
func WithStart(p cipher.Positions) Option { return func(v *Validator) { v.start = p.Clone() } }

// WithPolicy sets the machine's out-of-alphabet policy.
func WithPolicy(p cipher.Policy) Option { return func(v *Validator) { v.policy = p } }

// Validator checks inputs against a fixed expected ciphertext. It holds no
// mutable state and is safe for concurrent use: every call builds its own
// Machine.
type Validator struct {
	tables   cipher.Tables
	start    cipher.Positions
	policy   cipher.Policy
	expected []byte
}

// New returns a Validator for expected. The tables and start positions are
// checked once here so Validate never fails on configuration.
func New(expected []byte, opts ...Option) (*Validator, error) {
	v := &Validator{
		tables:   cipher.Standard(),
		expected: append([]byte(nil), expected...),
	}
	start, err := cipher.ParsePositions(cipher.StartPositions)
	if err != nil {
		return nil, err
	}
	v.start = start
	for _, o := range opts {
		o(v)
	}
	if _, err := v.machine(); err != nil {
		return nil, err
	}
	return v, nil
}

// Default returns the production Validator.
func Default(opts ...Option) (*Validator, error) {
	return New([]byte(ExpectedCiphertext), opts...)
}

// Expected returns a copy of the expected ciphertext.
func (v *Validator) Expected() []byte { return append([]byte(nil), v.expected...) }

// Policy returns the configured out-of-alphabet policy.
func (v *Validator) Policy() cipher.Policy { return v.policy }

func (v *Validator) machine() (*cipher.Machine, error) {
	return cipher.New(v.tables, v.start, cipher.WithPolicy(v.policy))
}

// Check runs input through a fresh machine and compares the whole output
// with the expected ciphertext. Every byte is transformed even when the
// lengths already differ.
func (v *Validator) Check(input []byte) Result {
	res := Result{InputLen: len(input), ExpectedLen: len(v.expected)}
	m, err := v.machine()
	if err != nil {
		res.Err = err
		return res
	}
	res.Output, res.Err = m.TransformAll(input)
	if res.Err != nil {
		return res
	}
	if subtle.ConstantTimeCompare(res.Output, v.expected) == 1 {
		res.Verdict = Accept
	}
	return res
}

// Validate is Check reduced to the verdict. Under cipher.PolicyReject an
// out-of-alphabet byte yields Reject together with a *cipher.SymbolError.
func (v *Validator) Validate(input []byte) (Verdict, error) {
	res := v.Check(input)
	return res.Verdict, res.Err
}

// Encrypt returns input as transformed by a fresh machine with this
// Validator's configuration.
func (v *Validator) Encrypt(input []byte) ([]byte, error) {
	m, err := v.machine()
	if err != nil {
		return nil, err
	}
	return m.TransformAll(input)
}
