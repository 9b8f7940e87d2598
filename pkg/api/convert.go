// pkg/api/convert.go
package api

import "enigma-core/validator"

// FromResult maps a validator result onto the v1 wire type.
func FromResult(res validator.Result, policy string) VerdictV1 {
	out := VerdictV1{
		Verdict:     res.Verdict.String(),
		Accepted:    res.Verdict == validator.Accept,
		InputLength: res.InputLen,
		Policy:      policy,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}
