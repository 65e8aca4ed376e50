// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as two-space-indented JSON followed by a newline.
// Both the scored-candidate array and the run manifest go through here, so
// the two artifacts always share one indentation style.
func EncodePretty(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
