// internal/server/handlers.go
package server

import (
	"errors"
	"net/http"

	"enigma-core/cipher"
	"enigma/pkg/api"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (api.InputV1, bool) {
	in, err := readInput(w, r, s.cfg.MaxBodyBytes)
	switch {
	case errors.Is(err, errBodyTooLarge):
		writeError(w, r, http.StatusRequestEntityTooLarge, "TOO_LARGE", err.Error())
		return in, false
	case err != nil:
		writeError(w, r, http.StatusBadRequest, "BAD_JSON", err.Error())
		return in, false
	}
	return in, true
}

// Invalid symbols are a verdict, not a transport error: the answer is ERR.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decode(w, r)
	if !ok {
		return
	}
	res := s.val.Check([]byte(in.Input))
	out := api.FromResult(res, s.val.Policy().String())
	out.RequestID = RequestID(r.Context())
	if res.Err != nil {
		s.log.Debug("invalid symbol", "request_id", out.RequestID, "err", res.Err)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decode(w, r)
	if !ok {
		return
	}
	ct, err := s.val.Encrypt([]byte(in.Input))
	if errors.Is(err, cipher.ErrInvalidSymbol) {
		writeError(w, r, http.StatusUnprocessableEntity, "INVALID_SYMBOL", err.Error())
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, api.EncryptV1{
		RequestID: RequestID(r.Context()),
		Output:    string(ct),
		Length:    len(ct),
	})
}
