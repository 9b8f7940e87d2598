package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma-core/cipher"
	"enigma-core/validator"
	"enigma/internal/config"
	"enigma/pkg/api"
)

const secret = "midnight{f1D)l3n_w/_M4_bi75~}"

func newTestServer(t *testing.T, opts ...validator.Option) *httptest.Server {
	t.Helper()
	val, err := validator.Default(opts...)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.MaxBodyBytes = 256
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(New(cfg, val, log).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func inputBody(t *testing.T, s string) string {
	t.Helper()
	b, err := json.Marshal(api.InputV1{Input: s})
	require.NoError(t, err)
	return string(b)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("X-Request-Id"), "req_"))
}

func TestValidateAcceptAndReject(t *testing.T) {
	ts := newTestServer(t)

	resp, body := post(t, ts, "/v1/validate", inputBody(t, secret))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var ok api.VerdictV1
	require.NoError(t, json.Unmarshal(body, &ok))
	assert.Equal(t, "OK!", ok.Verdict)
	assert.True(t, ok.Accepted)
	assert.Equal(t, len(secret), ok.InputLength)
	assert.Equal(t, resp.Header.Get("X-Request-Id"), ok.RequestID)

	_, body = post(t, ts, "/v1/validate", inputBody(t, secret+secret))
	var bad api.VerdictV1
	require.NoError(t, json.Unmarshal(body, &bad))
	assert.Equal(t, "ERR", bad.Verdict)
	assert.False(t, bad.Accepted)
}

func TestValidateInvalidSymbolIsVerdict(t *testing.T) {
	ts := newTestServer(t)
	resp, body := post(t, ts, "/v1/validate", inputBody(t, "mid night"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var v api.VerdictV1
	require.NoError(t, json.Unmarshal(body, &v))
	assert.Equal(t, "ERR", v.Verdict)
	assert.Equal(t, "reject", v.Policy)
	assert.Contains(t, v.Error, "offset 3")
}

func TestEncrypt(t *testing.T) {
	ts := newTestServer(t)
	resp, body := post(t, ts, "/v1/encrypt", inputBody(t, secret))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var e api.EncryptV1
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, validator.ExpectedCiphertext, e.Output)
	assert.Equal(t, len(secret), e.Length)

	resp, body = post(t, ts, "/v1/encrypt", inputBody(t, "a b"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_SYMBOL")
}

func TestEncryptPassThrough(t *testing.T) {
	ts := newTestServer(t, validator.WithPolicy(cipher.PolicyPassThrough))
	resp, body := post(t, ts, "/v1/encrypt", inputBody(t, "ab cd"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var e api.EncryptV1
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "64 a:", e.Output)
}

func TestBadRequests(t *testing.T) {
	ts := newTestServer(t)

	resp, body := post(t, ts, "/v1/validate", `{"input":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "BAD_JSON")

	resp, _ = post(t, ts, "/v1/validate", `{"input":"x","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, ts, "/v1/validate", `{"input":"x"} {"input":"y"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = post(t, ts, "/v1/validate", inputBody(t, strings.Repeat("A", 512)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Contains(t, string(body), "TOO_LARGE")

	resp, _ = post(t, ts, "/nope", "{}")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	r, err := http.Get(ts.URL + "/v1/validate")
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, r.StatusCode)
}

func TestRequestIDPropagates(t *testing.T) {
	ts := newTestServer(t)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v1/validate", bytes.NewBufferString(inputBody(t, secret)))
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "req_fixed")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var v api.VerdictV1
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.Equal(t, "req_fixed", v.RequestID)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	val, err := validator.Default()
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var logs bytes.Buffer
	srv := New(config.Default(), val, slog.New(slog.NewTextHandler(&logs, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Contains(t, logs.String(), "server shut down gracefully")
}
