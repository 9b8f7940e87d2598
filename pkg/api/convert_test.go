package api

import (
	"encoding/json"
	"testing"

	"enigma-core/cipher"
	"enigma-core/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResultAccept(t *testing.T) {
	v := FromResult(validator.Result{Verdict: validator.Accept, InputLen: 29}, "reject")
	assert.Equal(t, VerdictV1{Verdict: "OK!", Accepted: true, InputLength: 29, Policy: "reject"}, v)
}

func TestFromResultError(t *testing.T) {
	res := validator.Result{InputLen: 3, Err: &cipher.SymbolError{Offset: 1, Byte: ' '}}
	v := FromResult(res, "reject")
	assert.Equal(t, "ERR", v.Verdict)
	assert.False(t, v.Accepted)
	assert.Equal(t, "invalid symbol 0x20 at offset 1", v.Error)
}

// Field names are part of the wire contract.
func TestVerdictV1Fields(t *testing.T) {
	b, err := json.Marshal(VerdictV1{Verdict: "ERR", Policy: "reject"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"verdict":"ERR","accepted":false,"input_length":0,"policy":"reject"}`, string(b))
}
