package jwt

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// ClaimMapper converts decoded header or payload JSON text
// into a map of top level members.
type ClaimMapper func(text string) (map[string]any, error)

// JSONClaimMapper decodes a single JSON object, numbers are kept as json.Number
func JSONClaimMapper(text string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errors.WithStack(err)
	}
	if m == nil {
		return nil, errors.New("expected JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}
	return m, nil
}
