// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one palindrome hit.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Offset int    `json:"offset"`
	Window string `json:"window"`
}
