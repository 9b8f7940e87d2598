// internal/server/httpx.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"enigma/internal/jsonutil"
	"enigma/pkg/api"
)

type ctxKey struct{}

// NewRequestID returns a fresh "req_<uuid>" identifier.
func NewRequestID() string { return "req_" + uuid.NewString() }

// RequestID returns the id stored by the request-id middleware, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = NewRequestID()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_ = jsonutil.Encode(w, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, api.ErrorV1{
		RequestID: RequestID(r.Context()),
		Error:     api.ErrorBodyV1{Code: code, Message: message},
	})
}

var errBodyTooLarge = errors.New("request body too large")

// readInput decodes one api.InputV1 from a body limited to max bytes.
func readInput(w http.ResponseWriter, r *http.Request, max int64) (api.InputV1, error) {
	var in api.InputV1
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, max))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return in, errBodyTooLarge
		}
		return in, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return in, fmt.Errorf("unexpected data after JSON body")
	}
	return in, nil
}
