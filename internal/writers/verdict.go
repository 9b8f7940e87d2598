// internal/writers/verdict.go
package writers

import (
	"fmt"
	"io"

	"enigma/internal/jsonutil"
	"enigma/pkg/api"
)

func init() {
	RegisterVerdict("text", writeVerdictText)
	RegisterVerdict("json", writeVerdictJSON)
}

// Text output is the bare token: "OK!" or "ERR", then a newline.
func writeVerdictText(w io.Writer, v api.VerdictV1) error {
	_, err := fmt.Fprintln(w, v.Verdict)
	return err
}

func writeVerdictJSON(w io.Writer, v api.VerdictV1) error {
	return jsonutil.EncodePretty(w, v)
}
