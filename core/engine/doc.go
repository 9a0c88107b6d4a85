// Package engine contains the palindrome scanning core. It never imports app,
// writers, cli or anything under internal/; keep it domain-only.
//
// External outputs must not depend on the shapes here; use pkg/api for the
// stable wire types (JSON/JSONL v1).
package engine
