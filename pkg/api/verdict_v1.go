// pkg/api/verdict_v1.go
package api

// VerdictV1 is the stable JSON schema for one validation. Verdict is "OK!" or
// "ERR"; Policy is "reject" or "pass-through".
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type VerdictV1 struct {
	RequestID   string `json:"request_id,omitempty"`
	Verdict     string `json:"verdict"`
	Accepted    bool   `json:"accepted"`
	InputLength int    `json:"input_length"`
	Policy      string `json:"policy"`
	Error       string `json:"error,omitempty"`
}

// EncryptV1 is the stable schema for a transformed input.
type EncryptV1 struct {
	RequestID string `json:"request_id,omitempty"`
	Output    string `json:"output"`
	Length    int    `json:"length"`
}

// InputV1 is the request body accepted by the HTTP endpoints.
type InputV1 struct {
	Input string `json:"input"`
}

// ErrorV1 is the error envelope returned by the HTTP endpoints.
type ErrorV1 struct {
	RequestID string      `json:"request_id"`
	Error     ErrorBodyV1 `json:"error"`
}

type ErrorBodyV1 struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
