// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"palscan/core/engine"
	"palscan/internal/jsonlutil"
	"palscan/internal/output"
)

// StartHitJSONLWriter streams each engine.Hit as one JSON line (v1).
func StartHitJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error) {
	return jsonlutil.Start[engine.Hit](out, bufSize,
		func(enc *json.Encoder, h engine.Hit) error {
			return enc.Encode(output.ToAPIHit(h))
		},
		IsBrokenPipe,
	)
}
