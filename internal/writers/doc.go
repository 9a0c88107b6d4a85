// Package writers turns scan hits into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text, JSON, JSONL).
//   - Engine stays domain-only; the app only wires channels.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
