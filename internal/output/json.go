// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"palscan/core/engine"
	"palscan/pkg/api"
)

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h engine.Hit) api.HitV1 {
	return api.HitV1{Offset: h.Offset, Window: string(h.Window)}
}

func toAPIHits(list []engine.Hit) []api.HitV1 {
	out := make([]api.HitV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIHit(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Hit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIHits(list))
}
